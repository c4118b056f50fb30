package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gglink/gglink/internal/auth"
	"github.com/gglink/gglink/internal/domain"
	"github.com/gglink/gglink/internal/storage"
)

var emailRegex = regexp.MustCompile(`.+@.+\..+`)

// AuthService handles registration, login and identity resolution.
type AuthService struct {
	users  *storage.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *storage.UserRepository, hasher *auth.PasswordHasher, tokens *auth.JWTManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new account and returns a bearer token for it.
func (s *AuthService) Register(username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < 3 {
		return "", fmt.Errorf("%w: username must be at least 3 characters", ErrInvalidInput)
	}
	if !emailRegex.MatchString(email) {
		return "", fmt.Errorf("%w: please provide a valid email", ErrInvalidInput)
	}
	if len(password) < 6 {
		return "", fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	if _, err := s.users.FindByEmail(email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}
	if _, err := s.users.FindByUsername(username); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &storage.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(user); err != nil {
		return "", err
	}

	return s.tokens.Generate(user.ID, user.Username)
}

// Login authenticates a user by email or username and returns a bearer token.
func (s *AuthService) Login(identifier, password string) (string, error) {
	user, err := s.users.FindByIdentifier(strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID, user.Username)
}

// ResolveIdentity validates a bearer token and resolves it to a live account.
// A valid token whose account no longer exists is rejected.
func (s *AuthService) ResolveIdentity(token string) (domain.Identity, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return domain.Identity{}, err
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Identity{}, auth.ErrInvalidToken
		}
		return domain.Identity{}, err
	}

	return domain.Identity{UserID: user.ID, Username: user.Username}, nil
}
