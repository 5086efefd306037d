package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-advisor/backend/internal/models"
)

type SessionRepository struct {
	db *pgxpool.Pool
}

type SessionInput struct {
	Name        string
	Profile     []byte
	Report      []byte
	HealthScore int
	Grade       string
	TopFocus    string
}

// NewSessionRepository создает репозиторий сессий анализа.
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create сохраняет неизменяемый снимок сессии анализа.
func (r *SessionRepository) Create(ctx context.Context, userID uuid.UUID, input SessionInput) (models.Session, error) {
	var session models.Session

	if strings.TrimSpace(input.Name) == "" || len(input.Profile) == 0 || len(input.Report) == 0 {
		return session, ErrInvalid
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO sessions (id, user_id, name, profile, report, health_score, grade, top_focus)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, user_id, name, profile, report, health_score, grade, top_focus, created_at`,
		uuid.New(), userID, input.Name, input.Profile, input.Report, input.HealthScore, input.Grade, input.TopFocus,
	).Scan(&session.ID, &session.UserID, &session.Name, &session.Profile, &session.Report, &session.HealthScore, &session.Grade, &session.TopFocus, &session.CreatedAt)
	if err != nil {
		return session, err
	}

	return session, nil
}

// GetByID возвращает сессию пользователя по идентификатору.
func (r *SessionRepository) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (models.Session, error) {
	var session models.Session

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, profile, report, health_score, grade, top_focus, created_at
		 FROM sessions
		 WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	).Scan(&session.ID, &session.UserID, &session.Name, &session.Profile, &session.Report, &session.HealthScore, &session.Grade, &session.TopFocus, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session, ErrNotFound
		}
		return session, err
	}

	return session, nil
}

// ListByUser возвращает сводки сессий пользователя, новые первыми.
func (r *SessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SessionSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, health_score, grade, top_focus, created_at
		 FROM sessions
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]models.SessionSummary, 0)
	for rows.Next() {
		var summary models.SessionSummary

		err := rows.Scan(&summary.ID, &summary.Name, &summary.HealthScore, &summary.Grade, &summary.TopFocus, &summary.CreatedAt)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// Delete удаляет сессию пользователя.
func (r *SessionRepository) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM sessions
		 WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// PurgeOlderThan удаляет сессии старше заданного момента.
func (r *SessionRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM sessions
		 WHERE created_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, err
	}

	return cmd.RowsAffected(), nil
}
