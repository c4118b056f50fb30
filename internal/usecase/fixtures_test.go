package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gglink/gglink/internal/auth"
	"github.com/gglink/gglink/internal/domain"
	"github.com/gglink/gglink/internal/storage"
)

// setupDB opens a fresh in-memory database for one test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func newTestAuthService(db *gorm.DB) *AuthService {
	users := storage.NewUserRepository(db)
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewJWTManager("test-secret", domain.DefaultTokenTTL)
	return NewAuthService(users, hasher, tokens)
}

// seedUser inserts a user directly, bypassing registration.
func seedUser(t *testing.T, db *gorm.DB, username string) *storage.User {
	t.Helper()

	user := &storage.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "irrelevant",
		CreatedAt:    time.Now(),
	}
	if err := storage.NewUserRepository(db).Create(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// seedLobby creates a lobby owned by owner through the service.
func seedLobby(t *testing.T, svc *LobbyService, ownerID string, maxPlayers int) *storage.Lobby {
	t.Helper()

	lobby, err := svc.Create(ownerID, CreateLobbyInput{
		Name:       "Ranked grind",
		Game:       "Valorant",
		Mode:       "Competitive",
		MaxPlayers: maxPlayers,
	})
	if err != nil {
		t.Fatalf("failed to seed lobby: %v", err)
	}
	return lobby
}
