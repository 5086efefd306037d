package usage

import (
	"context"
	"log/slog"

	"example.com/finance-advisor/backend/internal/models"
)

type reportLog interface {
	Log(ctx context.Context, report models.UsageReport) error
}

// Service доставляет usage-отчеты сборщику и журналирует каждую попытку.
type Service struct {
	client  Client
	reports reportLog
	enabled bool
}

// NewService создает сервис доставки usage-отчетов.
func NewService(client Client, reports reportLog, enabled bool) *Service {
	return &Service{
		client:  client,
		reports: reports,
		enabled: enabled,
	}
}

// Report отправляет сводку сессии best-effort: ошибки не прерывают запрос.
func (s *Service) Report(ctx context.Context, session models.Session, monthlyIncome float64, endpoint string) {
	if s == nil || !s.enabled {
		return
	}

	payload := ReportPayload{
		UserID:        session.UserID.String(),
		SessionID:     session.ID.String(),
		Name:          session.Name,
		MonthlyIncome: monthlyIncome,
		HealthScore:   session.HealthScore,
		TopFocus:      session.TopFocus,
		GeneratedAt:   session.CreatedAt,
	}

	err := s.client.Deliver(ctx, payload)

	record := models.UsageReport{
		UserID:    session.UserID,
		SessionID: session.ID,
		Endpoint:  endpoint,
		Delivered: err == nil,
	}
	if err != nil {
		errMsg := err.Error()
		record.Error = &errMsg
		slog.Warn("usage report delivery failed",
			slog.String("session_id", session.ID.String()),
			slog.String("error", errMsg))
	}

	if logErr := s.reports.Log(ctx, record); logErr != nil {
		slog.Warn("usage report log failed",
			slog.String("session_id", session.ID.String()),
			slog.String("error", logErr.Error()))
	}
}
