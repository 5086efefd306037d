package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-advisor/backend/internal/auth"
	"example.com/finance-advisor/backend/internal/models"
	"example.com/finance-advisor/backend/internal/notifications"
	"example.com/finance-advisor/backend/internal/repository"
)

type SessionHandler struct {
	Sessions *repository.SessionRepository
	Notifier *notifications.Hub
}

// NewSessionHandler создает обработчик сохраненных сессий анализа.
func NewSessionHandler(sessions *repository.SessionRepository, notifier *notifications.Hub) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Notifier: notifier}
}

type SessionSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	HealthScore int       `json:"health_score"`
	Grade       string    `json:"grade"`
	TopFocus    string    `json:"top_focus"`
	CreatedAt   time.Time `json:"created_at"`
}

// List возвращает сессии пользователя от новых к старым.
func (h *SessionHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	sessions, err := h.Sessions.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	response := make([]SessionSummaryResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, toSessionSummaryResponse(session))
	}

	return c.JSON(http.StatusOK, map[string][]SessionSummaryResponse{"sessions": response})
}

// Get возвращает сессию вместе с профилем и полным отчетом.
func (h *SessionHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	session, err := h.Sessions.GetByID(c.Request().Context(), userID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toSessionResponse(session, true))
}

// Delete удаляет сессию пользователя.
func (h *SessionHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	if err := h.Sessions.Delete(c.Request().Context(), userID, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return serverError(c)
	}

	publishSessionDeleted(h.Notifier, userID, sessionID)
	return c.NoContent(http.StatusNoContent)
}

func toSessionSummaryResponse(summary models.SessionSummary) SessionSummaryResponse {
	return SessionSummaryResponse{
		ID:          summary.ID,
		Name:        summary.Name,
		HealthScore: summary.HealthScore,
		Grade:       summary.Grade,
		TopFocus:    summary.TopFocus,
		CreatedAt:   summary.CreatedAt,
	}
}
