package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/finance-advisor/backend/internal/config"
	"example.com/finance-advisor/backend/internal/database"
	"example.com/finance-advisor/backend/internal/maintenance"
	"example.com/finance-advisor/backend/internal/reportcache"
	"example.com/finance-advisor/backend/internal/server"
)

func main() {
	ensureEnvFile()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	db, err := database.Open(context.Background(), cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logger.Error("failed to ensure schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	reportCache, err := reportcache.New(cfg.Cache)
	if err != nil {
		logger.Error("failed to create report cache", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer reportCache.Close()

	jobs := maintenance.New(cfg.Maintenance, db, logger)
	if err := jobs.Start(); err != nil {
		logger.Error("failed to start maintenance jobs", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer jobs.Stop()

	e := server.New(cfg, logger, db, reportCache)
	httpServer := server.NewHTTPServer(cfg.Server, e)

	logger.Info("advisory service starting",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port))

	go func() {
		if err := e.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.String("error", err.Error()))
		}
	}()

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownSignal

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
}

func ensureEnvFile() {
	if os.Getenv("ENV_FILE") != "" {
		return
	}

	if _, err := os.Stat(".env"); err == nil {
		_ = os.Setenv("ENV_FILE", ".env")
		return
	}

	if _, err := os.Stat("../.env"); err == nil {
		_ = os.Setenv("ENV_FILE", "../.env")
	}
}
