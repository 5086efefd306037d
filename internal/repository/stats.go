package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

type SessionOverview struct {
	TotalSessions int
	AverageScore  float64
	BestScore     int
	WorstScore    int
	LatestScore   int
	LatestGrade   string
	GradeCounts   map[string]int
}

type MonthlyScoreRow struct {
	Month        time.Time
	AverageScore float64
	Sessions     int
}

// NewStatsRepository создает репозиторий статистики сессий.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Overview возвращает сводку по оценкам здоровья пользователя.
func (r *StatsRepository) Overview(ctx context.Context, userID uuid.UUID) (SessionOverview, error) {
	stats := SessionOverview{GradeCounts: make(map[string]int)}

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(health_score), 0),
		        COALESCE(MAX(health_score), 0),
		        COALESCE(MIN(health_score), 0)
		 FROM sessions
		 WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalSessions, &stats.AverageScore, &stats.BestScore, &stats.WorstScore)
	if err != nil {
		return stats, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT health_score, grade
		 FROM sessions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&stats.LatestScore, &stats.LatestGrade)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return stats, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT grade, COUNT(*)
		 FROM sessions
		 WHERE user_id = $1
		 GROUP BY grade`,
		userID,
	)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var grade string
		var count int
		if err := rows.Scan(&grade, &count); err != nil {
			return stats, err
		}
		stats.GradeCounts[grade] = count
	}

	if err := rows.Err(); err != nil {
		return stats, err
	}

	return stats, nil
}

// ScoreTrend возвращает средний балл по месяцам, новые первыми.
func (r *StatsRepository) ScoreTrend(ctx context.Context, userID uuid.UUID, months int) ([]MonthlyScoreRow, error) {
	if months <= 0 {
		return nil, ErrInvalid
	}

	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('month', created_at)::date AS month,
		        AVG(health_score),
		        COUNT(*)
		 FROM sessions
		 WHERE user_id = $1
		 GROUP BY month
		 ORDER BY month DESC
		 LIMIT $2`,
		userID, months,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MonthlyScoreRow, 0)
	for rows.Next() {
		var row MonthlyScoreRow
		var month time.Time
		if err := rows.Scan(&month, &row.AverageScore, &row.Sessions); err != nil {
			return nil, err
		}
		row.Month = month
		items = append(items, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
