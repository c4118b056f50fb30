package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gglink/gglink/internal/domain"
	"github.com/gglink/gglink/internal/storage"
)

// CreateLobbyInput carries a new lobby's attributes.
type CreateLobbyInput struct {
	Name        string
	Game        string
	Mode        string
	Description string
	MaxPlayers  int
	SkillLevel  string
	ImageURL    string
}

// LobbyService handles lobby CRUD and durable membership.
type LobbyService struct {
	lobbies *storage.LobbyRepository
	users   *storage.UserRepository
}

// NewLobbyService creates a new LobbyService.
func NewLobbyService(lobbies *storage.LobbyRepository, users *storage.UserRepository) *LobbyService {
	return &LobbyService{lobbies: lobbies, users: users}
}

// Create makes a new lobby with the owner as its first player.
func (s *LobbyService) Create(ownerID string, in CreateLobbyInput) (*storage.Lobby, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Game = strings.TrimSpace(in.Game)
	in.Mode = strings.TrimSpace(in.Mode)

	if len(in.Name) < 3 || len(in.Name) > 100 {
		return nil, fmt.Errorf("%w: lobby name must be 3-100 characters", ErrInvalidInput)
	}
	if in.Game == "" || in.Mode == "" {
		return nil, fmt.Errorf("%w: game and mode are required", ErrInvalidInput)
	}
	if in.MaxPlayers < domain.MinLobbyPlayers || in.MaxPlayers > domain.MaxLobbyPlayers {
		return nil, fmt.Errorf("%w: max players must be between %d and %d",
			ErrInvalidInput, domain.MinLobbyPlayers, domain.MaxLobbyPlayers)
	}
	if in.SkillLevel == "" {
		in.SkillLevel = "Any"
	}

	owner, err := s.users.FindByID(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}

	lobby := &storage.Lobby{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Game:        in.Game,
		Mode:        in.Mode,
		Description: in.Description,
		MaxPlayers:  in.MaxPlayers,
		SkillLevel:  in.SkillLevel,
		ImageURL:    in.ImageURL,
		OwnerID:     owner.ID,
		Players:     []storage.User{*owner},
		CreatedAt:   time.Now(),
	}
	if err := s.lobbies.Create(lobby); err != nil {
		return nil, err
	}
	return lobby, nil
}

// List returns lobbies matching the filter, newest first.
func (s *LobbyService) List(filter storage.LobbyFilter) ([]*storage.Lobby, error) {
	return s.lobbies.List(filter)
}

// Get returns a lobby with its players.
func (s *LobbyService) Get(id string) (*storage.Lobby, error) {
	lobby, err := s.lobbies.FindByID(id)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return lobby, nil
}

// Join adds a user to a lobby, enforcing capacity and uniqueness.
func (s *LobbyService) Join(lobbyID, userID string) (*storage.Lobby, error) {
	lobby, err := s.lobbies.FindByID(lobbyID)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	if len(lobby.Players) >= lobby.MaxPlayers {
		return nil, ErrLobbyFull
	}
	if lobbyHasPlayer(lobby, userID) {
		return nil, ErrAlreadyJoined
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if err := s.lobbies.AddPlayer(lobby, user); err != nil {
		return nil, err
	}

	return s.lobbies.FindByID(lobbyID)
}

// Leave removes a user from a lobby. When the owner leaves and nobody
// remains, the lobby is deleted.
func (s *LobbyService) Leave(lobbyID, userID string) (*storage.Lobby, bool, error) {
	lobby, err := s.lobbies.FindByID(lobbyID)
	if err != nil {
		return nil, false, mapStorageErr(err)
	}

	if !lobbyHasPlayer(lobby, userID) {
		return nil, false, ErrNotMember
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, false, mapStorageErr(err)
	}
	if err := s.lobbies.RemovePlayer(lobby, user); err != nil {
		return nil, false, err
	}

	lobby, err = s.lobbies.FindByID(lobbyID)
	if err != nil {
		return nil, false, mapStorageErr(err)
	}

	if lobby.OwnerID == userID && len(lobby.Players) == 0 {
		if err := s.lobbies.Delete(lobbyID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	return lobby, false, nil
}

// Delete removes a lobby; only the owner may do so.
func (s *LobbyService) Delete(lobbyID, userID string) error {
	lobby, err := s.lobbies.FindByID(lobbyID)
	if err != nil {
		return mapStorageErr(err)
	}
	if lobby.OwnerID != userID {
		return ErrNotOwner
	}
	return s.lobbies.Delete(lobbyID)
}

func lobbyHasPlayer(lobby *storage.Lobby, userID string) bool {
	for _, p := range lobby.Players {
		if p.ID == userID {
			return true
		}
	}
	return false
}

func mapStorageErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
