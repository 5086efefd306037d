package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	DB *pgxpool.Pool
}

// NewHealthHandler создает обработчик проверки состояния.
func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{DB: db}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health проверяет доступность сервиса и соединение с базой.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	database := "ok"
	status := http.StatusOK
	if err := h.DB.Ping(ctx); err != nil {
		database = "unavailable"
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, HealthResponse{Status: "ok", Database: database})
}
