package config

import (
	"reflect"
	"testing"
	"time"
)

// TestParseCSVEnv проверяет разбор списка email из ENV.
func TestParseCSVEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " Admin@example.com, ,USER@Example.com ")

	got := parseCSVEnv("ADMIN_EMAILS")
	want := []string{"admin@example.com", "user@example.com"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestParseCSVEnvMissing проверяет поведение при отсутствии переменной.
func TestParseCSVEnvMissing(t *testing.T) {
	got := parseCSVEnv("MISSING_ENV")
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

// TestParseBoolEnv проверяет разбор булевых флагов из ENV.
func TestParseBoolEnv(t *testing.T) {
	t.Setenv("USAGE_ENABLED", "true")

	got, err := parseBoolEnv("USAGE_ENABLED", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatalf("expected true, got false")
	}

	fallback, err := parseBoolEnv("MISSING_BOOL_ENV", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fallback {
		t.Fatalf("expected fallback true")
	}

	t.Setenv("USAGE_ENABLED", "maybe")
	if _, err := parseBoolEnv("USAGE_ENABLED", false); err == nil {
		t.Fatalf("expected error for invalid boolean")
	}
}

// TestValidateUsageRequiresBaseURL проверяет обязательность адреса коллектора.
func TestValidateUsageRequiresBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Usage.Enabled = true
	cfg.Usage.BaseURL = ""

	if err := cfg.validate(); err == nil {
		t.Fatalf("expected validation error")
	}

	cfg.Usage.BaseURL = "https://collector.example.com"
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestValidateRetention проверяет границы срока хранения сессий.
func TestValidateRetention(t *testing.T) {
	cfg := validConfig()
	cfg.Maintenance.SessionRetention = 0

	if err := cfg.validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Database: DatabaseConfig{
			Host:         "localhost",
			User:         "advisor",
			Name:         "finance_advisor",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Auth: AuthConfig{
			JWTSecret:          "secret",
			AccessTokenTTL:     15 * time.Minute,
			RefreshTokenTTL:    7 * 24 * time.Hour,
			RateLimitPerMinute: 60,
			RateLimitBurst:     10,
		},
		Advisor: AdvisorConfig{
			RateLimitPerMinute: 30,
			RateLimitBurst:     10,
		},
		Cache: CacheConfig{
			MaxEntries: 1024,
			TTL:        15 * time.Minute,
		},
		Maintenance: MaintenanceConfig{
			TokenPurgeSchedule:   "30 2 * * *",
			SessionPurgeSchedule: "0 3 * * *",
			SessionRetention:     90 * 24 * time.Hour,
		},
	}
}
