package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// LobbyFilter narrows lobby listings.
type LobbyFilter struct {
	Game       string // case-insensitive substring match
	SkillLevel string // exact match; empty or "Any" matches everything
	MinSlots   int    // only lobbies whose capacity is at least this
}

// LobbyRepository provides access to lobby storage.
type LobbyRepository struct {
	db *gorm.DB
}

// NewLobbyRepository creates a new lobby repository.
func NewLobbyRepository(db *gorm.DB) *LobbyRepository {
	return &LobbyRepository{db: db}
}

// Create saves a new lobby along with its initial players.
func (r *LobbyRepository) Create(lobby *Lobby) error {
	if err := r.db.Create(lobby).Error; err != nil {
		return fmt.Errorf("failed to create lobby: %w", err)
	}
	return nil
}

// FindByID retrieves a lobby with its players.
func (r *LobbyRepository) FindByID(id string) (*Lobby, error) {
	var lobby Lobby
	if err := r.db.Preload("Players").First(&lobby, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lobby: %w", err)
	}
	return &lobby, nil
}

// List retrieves lobbies matching the filter, newest first.
func (r *LobbyRepository) List(filter LobbyFilter) ([]*Lobby, error) {
	query := r.db.Preload("Players")

	if filter.Game != "" {
		query = query.Where("game LIKE ?", "%"+filter.Game+"%")
	}
	if filter.SkillLevel != "" && filter.SkillLevel != "Any" {
		query = query.Where("skill_level = ?", filter.SkillLevel)
	}
	if filter.MinSlots > 0 {
		query = query.Where("max_players >= ?", filter.MinSlots)
	}

	var lobbies []*Lobby
	if err := query.Order("created_at DESC").Find(&lobbies).Error; err != nil {
		return nil, fmt.Errorf("failed to list lobbies: %w", err)
	}
	return lobbies, nil
}

// AddPlayer appends a user to the lobby's player set.
func (r *LobbyRepository) AddPlayer(lobby *Lobby, user *User) error {
	if err := r.db.Model(lobby).Association("Players").Append(user); err != nil {
		return fmt.Errorf("failed to add player: %w", err)
	}
	return nil
}

// RemovePlayer removes a user from the lobby's player set.
func (r *LobbyRepository) RemovePlayer(lobby *Lobby, user *User) error {
	if err := r.db.Model(lobby).Association("Players").Delete(user); err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}
	return nil
}

// Delete removes a lobby and its player associations.
func (r *LobbyRepository) Delete(id string) error {
	lobby := Lobby{ID: id}
	if err := r.db.Model(&lobby).Association("Players").Clear(); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}
	result := r.db.Delete(&Lobby{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete lobby: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
