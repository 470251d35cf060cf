package jwt

import (
	"testing"
	"time"

	"lifeorg/backend/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-key-for-unit-testing",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %s, want admin", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %s, want access", claims.TokenType)
	}
	if claims.Issuer != "lifeorg" {
		t.Errorf("Issuer = %s, want lifeorg", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("jti should not be empty")
	}
}

func TestGenerateRefreshToken_TTLSelection(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1", "newcomer", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}
	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("TokenType = %s, want refresh", claims.TokenType)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("default refresh TTL ≈ 24h expected, got %v", ttl)
	}

	remembered, err := m.GenerateRefreshToken("user-1", "newcomer", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken(rememberMe) failed: %v", err)
	}
	claims, err = m.ParseToken(remembered)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	ttl = time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour {
		t.Errorf("remember-me refresh TTL ≈ 168h expected, got %v", ttl)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	token, err := m.GenerateAccessToken("user-1", "newcomer")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	other := NewManager(&config.AuthConfig{
		JWTSecret:      "a-different-secret-entirely",
		AccessTokenTTL: 15 * time.Minute,
	})
	if _, err := other.ParseToken(token); err == nil {
		t.Error("token signed with another secret should not parse")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()
	if _, err := m.ParseToken("not.a.token"); err == nil {
		t.Error("garbage token should not parse")
	}
}
