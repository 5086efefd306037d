package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-advisor/backend/internal/models"
)

type UsageReportRepository struct {
	db *pgxpool.Pool
}

type UsageReportFilter struct {
	UserID    *uuid.UUID
	Delivered *bool
	Endpoint  *string
}

type DailyCount struct {
	Day   time.Time
	Count int
}

type UsageStats struct {
	Users        int
	Sessions     int
	Reports      int
	Delivered    int
	Failed       int
	ReportsByDay []DailyCount
}

// NewUsageReportRepository создает репозиторий журналов доставки usage-отчетов.
func NewUsageReportRepository(db *pgxpool.Pool) *UsageReportRepository {
	return &UsageReportRepository{db: db}
}

// Log сохраняет результат попытки доставки usage-отчета.
func (r *UsageReportRepository) Log(ctx context.Context, report models.UsageReport) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO usage_reports (id, user_id, session_id, endpoint, delivered, error)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), report.UserID, report.SessionID, report.Endpoint, report.Delivered, report.Error,
	)
	return err
}

// List возвращает журналы доставки с фильтрацией и пагинацией.
func (r *UsageReportRepository) List(ctx context.Context, filter UsageReportFilter, limit, offset int) ([]models.UsageReport, error) {
	where, args := buildUsageReportWhere(filter)

	limitParam := len(args) + 1
	offsetParam := len(args) + 2
	query := fmt.Sprintf(
		"SELECT id, user_id, session_id, endpoint, delivered, error, created_at FROM usage_reports%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, limitParam, offsetParam,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]models.UsageReport, 0)
	for rows.Next() {
		var report models.UsageReport
		var errMsg *string

		if err := rows.Scan(&report.ID, &report.UserID, &report.SessionID, &report.Endpoint, &report.Delivered, &errMsg, &report.CreatedAt); err != nil {
			return nil, err
		}

		report.Error = errMsg
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Count возвращает количество журналов по фильтру.
func (r *UsageReportRepository) Count(ctx context.Context, filter UsageReportFilter) (int, error) {
	where, args := buildUsageReportWhere(filter)

	query := fmt.Sprintf("SELECT COUNT(*) FROM usage_reports%s", where)
	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Stats возвращает агрегированную статистику использования за N дней.
func (r *UsageReportRepository) Stats(ctx context.Context, days int) (UsageStats, error) {
	stats := UsageStats{}
	if days <= 0 {
		return stats, ErrInvalid
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.Users); err != nil {
		return stats, err
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&stats.Sessions); err != nil {
		return stats, err
	}

	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE delivered),
		        COUNT(*) FILTER (WHERE NOT delivered)
		 FROM usage_reports`,
	).Scan(&stats.Reports, &stats.Delivered, &stats.Failed); err != nil {
		return stats, err
	}

	start := time.Now().UTC().AddDate(0, 0, -days+1)
	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('day', created_at)::date AS day,
		        COUNT(*)
		 FROM usage_reports
		 WHERE created_at >= $1
		 GROUP BY day
		 ORDER BY day DESC`,
		start,
	)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	stats.ReportsByDay = make([]DailyCount, 0)
	for rows.Next() {
		var row DailyCount
		if err := rows.Scan(&row.Day, &row.Count); err != nil {
			return stats, err
		}
		stats.ReportsByDay = append(stats.ReportsByDay, row)
	}

	if err := rows.Err(); err != nil {
		return stats, err
	}

	return stats, nil
}

func buildUsageReportWhere(filter UsageReportFilter) (string, []interface{}) {
	clauses := make([]string, 0)
	args := make([]interface{}, 0)

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id = $%d", len(args)))
	}

	if filter.Delivered != nil {
		args = append(args, *filter.Delivered)
		clauses = append(clauses, fmt.Sprintf("delivered = $%d", len(args)))
	}

	if filter.Endpoint != nil {
		args = append(args, *filter.Endpoint)
		clauses = append(clauses, fmt.Sprintf("endpoint = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
