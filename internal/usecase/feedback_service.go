package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gglink/gglink/internal/storage"
)

// Profile bundles a user with the reputation data their profile page shows.
type Profile struct {
	User            *storage.User     `json:"user"`
	RatingsReceived []*storage.Rating `json:"ratings_received"`
	AverageRating   float64           `json:"average_rating"`
}

// UpdateProfileInput carries the editable profile fields. Nil pointers leave
// the field unchanged.
type UpdateProfileInput struct {
	Username          *string
	FavoriteGame      *string
	ProfilePictureURL *string
	Bio               *string
}

// FeedbackService handles ratings, reports and profile aggregation.
type FeedbackService struct {
	feedback *storage.FeedbackRepository
	lobbies  *storage.LobbyRepository
	users    *storage.UserRepository
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(feedback *storage.FeedbackRepository, lobbies *storage.LobbyRepository, users *storage.UserRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback, lobbies: lobbies, users: users}
}

// SubmitRating records a star rating from rater to ratedUser for a shared
// lobby. Both must be players of the lobby and a rater may rate a player at
// most once per lobby.
func (s *FeedbackService) SubmitRating(raterID, ratedUserID, lobbyID string, stars int, comment string) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("%w: stars must be between 1 and 5", ErrInvalidInput)
	}

	if err := s.requireSharedLobby(lobbyID, raterID, ratedUserID); err != nil {
		return err
	}

	exists, err := s.feedback.RatingExists(raterID, ratedUserID, lobbyID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateFeedback
	}

	return s.feedback.CreateRating(&storage.Rating{
		ID:          uuid.New().String(),
		RaterID:     raterID,
		RatedUserID: ratedUserID,
		LobbyID:     lobbyID,
		Stars:       stars,
		Comment:     strings.TrimSpace(comment),
		CreatedAt:   time.Now(),
	})
}

// SubmitReport records a misconduct report tied to a shared lobby.
func (s *FeedbackService) SubmitReport(reporterID, reportedUserID, lobbyID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	if err := s.requireSharedLobby(lobbyID, reporterID, reportedUserID); err != nil {
		return err
	}

	exists, err := s.feedback.ReportExists(reporterID, reportedUserID, lobbyID, reason)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateFeedback
	}

	return s.feedback.CreateReport(&storage.Report{
		ID:             uuid.New().String(),
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		LobbyID:        lobbyID,
		Reason:         reason,
		Status:         "pending",
		CreatedAt:      time.Now(),
	})
}

// Profile returns a user's public profile with received ratings and their
// average rounded to one decimal.
func (s *FeedbackService) Profile(userID string) (*Profile, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	ratings, err := s.feedback.RatingsForUser(userID)
	if err != nil {
		return nil, err
	}

	var average float64
	if len(ratings) > 0 {
		total := 0
		for _, r := range ratings {
			total += r.Stars
		}
		average = math.Round(float64(total)/float64(len(ratings))*10) / 10
	}

	return &Profile{
		User:            user,
		RatingsReceived: ratings,
		AverageRating:   average,
	}, nil
}

// UpdateProfile applies the provided profile changes, enforcing username
// uniqueness.
func (s *FeedbackService) UpdateProfile(userID string, in UpdateProfileInput) (*storage.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if len(username) < 3 {
			return nil, fmt.Errorf("%w: username must be at least 3 characters", ErrInvalidInput)
		}
		if username != user.Username {
			if existing, err := s.users.FindByUsername(username); err == nil && existing.ID != userID {
				return nil, ErrUsernameTaken
			}
			user.Username = username
		}
	}
	if in.FavoriteGame != nil {
		user.FavoriteGame = strings.TrimSpace(*in.FavoriteGame)
	}
	if in.ProfilePictureURL != nil {
		user.ProfilePictureURL = strings.TrimSpace(*in.ProfilePictureURL)
	}
	if in.Bio != nil {
		user.Bio = strings.TrimSpace(*in.Bio)
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *FeedbackService) requireSharedLobby(lobbyID, firstID, secondID string) error {
	lobby, err := s.lobbies.FindByID(lobbyID)
	if err != nil {
		return mapStorageErr(err)
	}
	if !lobbyHasPlayer(lobby, firstID) || !lobbyHasPlayer(lobby, secondID) {
		return ErrNotInLobbyTogether
	}
	return nil
}
