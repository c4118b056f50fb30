package usecase

import (
	"errors"
	"testing"

	"github.com/gglink/gglink/internal/auth"
	"github.com/gglink/gglink/internal/domain"
	"github.com/gglink/gglink/internal/storage"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := setupDB(t)
	svc := newTestAuthService(db)

	token, err := svc.Register("alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if token == "" {
		t.Fatal("expected a token on registration")
	}

	// Login by email and by username
	if _, err := svc.Login("alice@example.com", "secret1"); err != nil {
		t.Errorf("login by email failed: %v", err)
	}
	if _, err := svc.Login("alice", "secret1"); err != nil {
		t.Errorf("login by username failed: %v", err)
	}

	if _, err := svc.Login("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("nobody", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	db := setupDB(t)
	svc := newTestAuthService(db)

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"short username", "ab", "a@b.co", "secret1"},
		{"bad email", "alice", "not-an-email", "secret1"},
		{"short password", "alice", "a@b.co", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(tc.username, tc.email, tc.password); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_RegisterDuplicates(t *testing.T) {
	db := setupDB(t)
	svc := newTestAuthService(db)

	if _, err := svc.Register("alice", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := svc.Register("other", "alice@example.com", "secret1"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
	if _, err := svc.Register("alice", "new@example.com", "secret1"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	db := setupDB(t)
	svc := newTestAuthService(db)

	token, err := svc.Register("alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	identity, err := svc.ResolveIdentity(token)
	if err != nil {
		t.Fatalf("ResolveIdentity() error = %v", err)
	}
	if identity.Username != "alice" || identity.UserID == "" {
		t.Errorf("unexpected identity %+v", identity)
	}

	if _, err := svc.ResolveIdentity("garbage"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ResolveIdentityDeletedAccount(t *testing.T) {
	db := setupDB(t)
	svc := newTestAuthService(db)

	token, err := svc.Register("alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// A valid token whose account is gone must be rejected.
	if err := db.Delete(&storage.User{}, "username = ?", "alice").Error; err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	if _, err := svc.ResolveIdentity(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for a dangling account, got %v", err)
	}

	var zero domain.Identity
	if identity, _ := svc.ResolveIdentity(token); identity != zero {
		t.Errorf("expected zero identity, got %+v", identity)
	}
}
