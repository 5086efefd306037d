package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestTokenPairRoundTrip проверяет выпуск и разбор пары токенов.
func TestTokenPairRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", "finance-advisor", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()
	refreshID := uuid.New()

	pair, err := manager.NewTokenPair(userID, refreshID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	claims, err := manager.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("expected valid access token, got %v", err)
	}
	if claims.Subject != userID.String() {
		t.Fatalf("expected subject %s, got %s", userID, claims.Subject)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access type, got %s", claims.TokenType)
	}

	refreshClaims, err := manager.ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("expected valid refresh token, got %v", err)
	}
	if refreshClaims.ID != refreshID.String() {
		t.Fatalf("expected token id %s, got %s", refreshID, refreshClaims.ID)
	}
}

// TestTokenTypeMismatch проверяет, что refresh-токен не проходит как access.
func TestTokenTypeMismatch(t *testing.T) {
	manager := NewTokenManager("test-secret", "finance-advisor", 15*time.Minute, 24*time.Hour)

	pair, err := manager.NewTokenPair(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := manager.ParseAccessToken(pair.RefreshToken); err == nil {
		t.Fatal("expected error for refresh token used as access")
	}
	if _, err := manager.ParseRefreshToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for access token used as refresh")
	}
}

// TestTokenWrongIssuer проверяет отклонение токена чужого издателя.
func TestTokenWrongIssuer(t *testing.T) {
	issued := NewTokenManager("test-secret", "other-service", 15*time.Minute, 24*time.Hour)
	pair, err := issued.NewTokenPair(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	manager := NewTokenManager("test-secret", "finance-advisor", 15*time.Minute, 24*time.Hour)
	if _, err := manager.ParseAccessToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}
