package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Session struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Name        string          `json:"name"`
	Profile     json.RawMessage `json:"profile"`
	Report      json.RawMessage `json:"report"`
	HealthScore int             `json:"health_score"`
	Grade       string          `json:"grade"`
	TopFocus    string          `json:"top_focus"`
	CreatedAt   time.Time       `json:"created_at"`
}

type SessionSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	HealthScore int       `json:"health_score"`
	Grade       string    `json:"grade"`
	TopFocus    string    `json:"top_focus"`
	CreatedAt   time.Time `json:"created_at"`
}

type UsageReport struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	SessionID uuid.UUID `json:"session_id"`
	Endpoint  string    `json:"endpoint"`
	Delivered bool      `json:"delivered"`
	Error     *string   `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}
