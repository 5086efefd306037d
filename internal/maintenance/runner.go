package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"example.com/finance-advisor/backend/internal/config"
	"example.com/finance-advisor/backend/internal/repository"
)

const jobTimeout = time.Minute

// Runner выполняет фоновую очистку по cron-расписаниям.
type Runner struct {
	cfg      config.MaintenanceConfig
	cron     *cron.Cron
	logger   *slog.Logger
	tokens   *repository.RefreshTokenRepository
	sessions *repository.SessionRepository
}

type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info("cron: "+msg, slog.Any("details", keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, slog.String("error", err.Error()), slog.Any("details", keysAndValues))
}

// New создает планировщик очистки токенов и старых сессий.
func New(cfg config.MaintenanceConfig, db *pgxpool.Pool, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		cfg:      cfg,
		cron:     cron.New(cron.WithChain(cron.Recover(cronLogger{logger: logger}))),
		logger:   logger,
		tokens:   repository.NewRefreshTokenRepository(db),
		sessions: repository.NewSessionRepository(db),
	}
}

// Start регистрирует задачи и запускает планировщик.
func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc(r.cfg.TokenPurgeSchedule, r.purgeTokens); err != nil {
		return fmt.Errorf("schedule token purge: %w", err)
	}

	if _, err := r.cron.AddFunc(r.cfg.SessionPurgeSchedule, r.purgeSessions); err != nil {
		return fmt.Errorf("schedule session purge: %w", err)
	}

	r.cron.Start()
	return nil
}

// Stop останавливает планировщик и дожидается текущих задач.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Runner) purgeTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	count, err := r.tokens.PurgeExpired(ctx, time.Now().UTC())
	if err != nil {
		r.logger.Error("refresh token purge failed", slog.String("error", err.Error()))
		return
	}

	r.logger.Info("refresh tokens purged", slog.Int64("count", count))
}

func (r *Runner) purgeSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	cutoff := time.Now().UTC().Add(-r.cfg.SessionRetention)
	count, err := r.sessions.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		r.logger.Error("session purge failed", slog.String("error", err.Error()))
		return
	}

	r.logger.Info("old sessions purged", slog.Int64("count", count), slog.String("cutoff", cutoff.Format(time.RFC3339)))
}
