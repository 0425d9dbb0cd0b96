package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"esweb-http-service/internal/infrastructure/config"
)

func TestJWTService_GenerateAndExtract(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	email, err := svc.ExtractEmail(token)
	if err != nil {
		t.Fatalf("ExtractEmail failed: %v", err)
	}
	if email != "admin@example.com" {
		t.Errorf("expected subject admin@example.com, got %q", email)
	}
}

func TestJWTService_RejectsWrongKey(t *testing.T) {
	issuer := NewJWTService(newTestConfig())
	verifier := NewJWTService(&config.Config{
		JWTSecretKey:     "a-different-secret",
		TokenExpireHours: 1,
	})

	token, err := issuer.GenerateToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := verifier.ExtractEmail(token); err == nil {
		t.Error("expected a token signed with another key to be rejected")
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	svc := NewJWTService(cfg)

	// Sign a token that expired an hour ago with the service's own secret
	claims := jwt.RegisteredClaims{
		Subject:   "admin@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecretKey))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := svc.ExtractEmail(token); err == nil {
		t.Error("expected an expired token to be rejected")
	}
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	if _, err := svc.ExtractEmail("not-a-token"); err == nil {
		t.Error("expected a malformed token to be rejected")
	}
}
