package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sharearahammed/mega-earning-server/internal/model"
)

// FeedbackRepository defines feedback read operations.
type FeedbackRepository interface {
	List(ctx context.Context) ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// List lists all feedback entries, newest first.
func (r *feedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
