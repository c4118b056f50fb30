package storage

import (
	"fmt"

	"gorm.io/gorm"
)

// FeedbackRepository provides access to rating and report storage.
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// CreateRating saves a new rating.
func (r *FeedbackRepository) CreateRating(rating *Rating) error {
	if err := r.db.Create(rating).Error; err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// RatingExists reports whether rater already rated ratedUser in the lobby.
func (r *FeedbackRepository) RatingExists(raterID, ratedUserID, lobbyID string) (bool, error) {
	var count int64
	err := r.db.Model(&Rating{}).
		Where("rater_id = ? AND rated_user_id = ? AND lobby_id = ?", raterID, ratedUserID, lobbyID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check rating: %w", err)
	}
	return count > 0, nil
}

// RatingsForUser retrieves the ratings a user received, newest first, with
// rater details populated.
func (r *FeedbackRepository) RatingsForUser(userID string) ([]*Rating, error) {
	var ratings []*Rating
	err := r.db.Preload("Rater").
		Where("rated_user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

// CreateReport saves a new report.
func (r *FeedbackRepository) CreateReport(report *Report) error {
	if err := r.db.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// ReportExists reports whether an identical report was already filed.
func (r *FeedbackRepository) ReportExists(reporterID, reportedUserID, lobbyID, reason string) (bool, error) {
	var count int64
	err := r.db.Model(&Report{}).
		Where("reporter_id = ? AND reported_user_id = ? AND lobby_id = ? AND reason = ?",
			reporterID, reportedUserID, lobbyID, reason).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check report: %w", err)
	}
	return count > 0, nil
}
