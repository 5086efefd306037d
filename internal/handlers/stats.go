package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"example.com/finance-advisor/backend/internal/auth"
	"example.com/finance-advisor/backend/internal/repository"
)

type StatsHandler struct {
	Stats *repository.StatsRepository
}

// NewStatsHandler создает обработчик статистики сессий.
func NewStatsHandler(stats *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

type OverviewResponse struct {
	TotalSessions int              `json:"total_sessions"`
	AverageScore  float64          `json:"average_score"`
	BestScore     int              `json:"best_score"`
	WorstScore    int              `json:"worst_score"`
	LatestScore   int              `json:"latest_score"`
	LatestGrade   string           `json:"latest_grade"`
	GradeCounts   map[string]int   `json:"grade_counts"`
	Trend         []ScoreTrendItem `json:"trend"`
}

type ScoreTrendItem struct {
	Month        string  `json:"month"`
	AverageScore float64 `json:"average_score"`
	Sessions     int     `json:"sessions"`
}

// Overview возвращает сводку по оценкам и помесячный тренд.
func (h *StatsHandler) Overview(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	months := 6
	if raw := c.QueryParam("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return badRequest(c, "invalid months")
		}
		if parsed > 24 {
			parsed = 24
		}
		months = parsed
	}

	overview, err := h.Stats.Overview(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	rows, err := h.Stats.ScoreTrend(c.Request().Context(), userID, months)
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "invalid months")
		}
		return serverError(c)
	}

	trend := make([]ScoreTrendItem, 0, len(rows))
	for _, row := range rows {
		trend = append(trend, ScoreTrendItem{
			Month:        row.Month.Format("2006-01"),
			AverageScore: round1(row.AverageScore),
			Sessions:     row.Sessions,
		})
	}

	return c.JSON(http.StatusOK, OverviewResponse{
		TotalSessions: overview.TotalSessions,
		AverageScore:  round1(overview.AverageScore),
		BestScore:     overview.BestScore,
		WorstScore:    overview.WorstScore,
		LatestScore:   overview.LatestScore,
		LatestGrade:   overview.LatestGrade,
		GradeCounts:   overview.GradeCounts,
		Trend:         trend,
	})
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
