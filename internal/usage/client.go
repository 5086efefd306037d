package usage

import (
	"context"
	"time"
)

// ReportPayload описывает сводку завершенной сессии для внешнего сборщика.
type ReportPayload struct {
	UserID        string    `json:"user_id"`
	SessionID     string    `json:"session_id"`
	Name          string    `json:"name"`
	MonthlyIncome float64   `json:"monthly_income"`
	HealthScore   int       `json:"health_score"`
	TopFocus      string    `json:"top_focus"`
	GeneratedAt   time.Time `json:"generated_at"`
}

type Client interface {
	Deliver(ctx context.Context, payload ReportPayload) error
}
