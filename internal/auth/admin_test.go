package auth

import (
	"errors"
	"testing"
	"time"
)

func TestMintAndVerify(t *testing.T) {
	svc := NewAdminTokenService("secret", time.Hour)
	tok, err := svc.Mint("admin-1")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "admin-1" {
		t.Fatalf("expected subject admin-1, got %s", claims.Subject)
	}
	if !claims.Admin {
		t.Fatalf("expected admin claim set")
	}
}

func TestMint_EmptyUserID(t *testing.T) {
	svc := NewAdminTokenService("secret", time.Hour)
	if _, err := svc.Mint(""); !errors.Is(err, ErrEmptyUserID) {
		t.Fatalf("expected ErrEmptyUserID, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := NewAdminTokenService("secret", time.Hour)
	tok, err := svc.Mint("admin-1")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	other := NewAdminTokenService("different", time.Hour)
	if _, err := other.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := NewAdminTokenService("secret", -2*time.Hour)
	svc.leeway = 0
	tok, err := svc.Mint("admin-1")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := svc.Verify(tok); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewAdminTokenService("secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
