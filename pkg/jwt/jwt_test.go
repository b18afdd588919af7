package jwt

import (
	"testing"
	"time"

	"hospital-management/config"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService()
	sub := Subject{UserID: 42, Username: "drwho", Email: "who@example.com", Role: "doctor"}

	token, tokenID, err := svc.GenerateAccessToken(sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Identity() != sub {
		t.Errorf("expected subject %+v, got %+v", sub, claims.Identity())
	}
	if claims.TokenType != AccessToken {
		t.Errorf("expected access token, got %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("expected token id %s, got %s", tokenID, claims.TokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(Subject{UserID: 1})
	if err != nil {
		t.Fatal(err)
	}
	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("expected refresh token, got %s", claims.TokenType)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestService().GenerateAccessToken(Subject{UserID: 1})
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "other", AccessExpiry: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.GenerateAccessToken(Subject{UserID: 1})
	if err != nil {
		t.Fatal(err)
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected expiry error")
	}
}
