package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// CommunityRepository provides access to community storage.
type CommunityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a new community repository.
func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// List retrieves all communities ordered by name.
func (r *CommunityRepository) List() ([]*Community, error) {
	var communities []*Community
	if err := r.db.Order("name ASC").Find(&communities).Error; err != nil {
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}
	return communities, nil
}

// FindByID retrieves a community with its members.
func (r *CommunityRepository) FindByID(id string) (*Community, error) {
	var community Community
	if err := r.db.Preload("Members").First(&community, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find community: %w", err)
	}
	return &community, nil
}

// AddMember appends a user to the community's member set.
func (r *CommunityRepository) AddMember(community *Community, user *User) error {
	if err := r.db.Model(community).Association("Members").Append(user); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// RemoveMember removes a user from the community's member set.
func (r *CommunityRepository) RemoveMember(community *Community, user *User) error {
	if err := r.db.Model(community).Association("Members").Delete(user); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}
