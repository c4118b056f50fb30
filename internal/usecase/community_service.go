package usecase

import (
	"github.com/gglink/gglink/internal/storage"
)

// CommunityService handles community listing and durable membership.
type CommunityService struct {
	communities *storage.CommunityRepository
	users       *storage.UserRepository
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(communities *storage.CommunityRepository, users *storage.UserRepository) *CommunityService {
	return &CommunityService{communities: communities, users: users}
}

// List returns all communities ordered by name.
func (s *CommunityService) List() ([]*storage.Community, error) {
	return s.communities.List()
}

// Get returns a community with its members.
func (s *CommunityService) Get(id string) (*storage.Community, error) {
	community, err := s.communities.FindByID(id)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return community, nil
}

// Join adds a user to a community.
func (s *CommunityService) Join(communityID, userID string) (*storage.Community, error) {
	community, err := s.communities.FindByID(communityID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if communityHasMember(community, userID) {
		return nil, ErrAlreadyJoined
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if err := s.communities.AddMember(community, user); err != nil {
		return nil, err
	}
	return s.communities.FindByID(communityID)
}

// Leave removes a user from a community.
func (s *CommunityService) Leave(communityID, userID string) (*storage.Community, error) {
	community, err := s.communities.FindByID(communityID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if !communityHasMember(community, userID) {
		return nil, ErrNotMember
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if err := s.communities.RemoveMember(community, user); err != nil {
		return nil, err
	}
	return s.communities.FindByID(communityID)
}

func communityHasMember(community *storage.Community, userID string) bool {
	for _, m := range community.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
