package jwt

import (
	"testing"
	"time"

	"pms-backend/config"

	"github.com/google/uuid"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService("test-secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "patient@example.com", 3)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "patient@example.com" {
		t.Errorf("Email = %s", claims.Email)
	}
	if claims.RoleID != 3 {
		t.Errorf("RoleID = %d, want 3", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %s, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %s, want %s", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService("test-secret")

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "doctor@example.com", 2)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %s, want refresh", claims.TokenType)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestService("secret-a").GenerateAccessToken(uuid.New(), "a@example.com", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := newTestService("secret-b").ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := newTestService("secret").ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for malformed token")
	}
}
