package auth

import (
	"testing"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/common/config"
)

func TestGenerateAndVerifyOperatorToken(t *testing.T) {
	cfg := config.AuthConfig{
		Enabled:   true,
		JWTSecret: "test-secret",
		Issuer:    "towlinkdrive",
		Audience:  "towlinkdrive",
	}

	token, exp, err := GenerateOperatorToken(cfg, "tower-1", []string{"tower"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateOperatorToken: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if exp.Before(time.Now()) {
		t.Fatalf("expected exp in future")
	}

	claims, err := VerifyToken(cfg, token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Subject != "tower-1" {
		t.Fatalf("subject mismatch: %s", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "tower" {
		t.Fatalf("roles mismatch: %#v", claims.Roles)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "secret-a", Issuer: "towlinkdrive"}
	token, _, err := GenerateOperatorToken(cfg, "tower-1", nil, time.Hour)
	if err != nil {
		t.Fatalf("GenerateOperatorToken: %v", err)
	}

	other := config.AuthConfig{JWTSecret: "secret-b", Issuer: "towlinkdrive"}
	if _, err := VerifyToken(other, token); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}
