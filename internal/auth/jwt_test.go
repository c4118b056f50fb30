package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	token, err := mgr.Generate("user-1", "Alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user id %q, got %q", "user-1", claims.UserID)
	}
	if claims.Username != "Alice" {
		t.Errorf("expected username %q, got %q", "Alice", claims.Username)
	}
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	if _, err := mgr.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := mgr.Generate("user-1", "Alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)

	token, err := mgr.Generate("user-1", "Alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := mgr.Verify(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}
