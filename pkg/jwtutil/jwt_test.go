package jwtutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"voiceforge/pkg/config"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken("ada@acme.test", userID, "admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Email != "ada@acme.test" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected admin role, got %q", claims.Role)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatal("expected a future expiry")
	}

	claims, err := ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("validate refresh token: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
}

func TestAccessTokenRejectedAsRefreshToken(t *testing.T) {
	token, err := GenerateToken("ada@acme.test", uuid.New(), "member")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ValidateRefreshToken(token); err == nil {
		t.Fatal("expected an access token to fail refresh validation")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-jwt"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}

func TestInitializeChangesSecrets(t *testing.T) {
	token, err := GenerateToken("ada@acme.test", uuid.New(), "member")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	Initialize(&config.JWTConfig{Secret: "other-secret", RefreshSecret: "other-refresh"})
	defer Initialize(&config.JWTConfig{Secret: "secret-key", RefreshSecret: "refresh-secret-key"})

	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected token signed with the old secret to be rejected")
	}
}

func TestInitializeKeepsDefaultTTLs(t *testing.T) {
	Initialize(&config.JWTConfig{Secret: "secret-key", RefreshSecret: "refresh-secret-key"})

	_, expiresAt, err := GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}
	if time.Until(expiresAt) < 6*24*time.Hour {
		t.Fatalf("expected the default week-long TTL, got %v", time.Until(expiresAt))
	}
}
