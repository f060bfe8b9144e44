package service

import (
	"context"

	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/repository"
)

// FeedbackService exposes the read-only testimonial list.
type FeedbackService interface {
	List(ctx context.Context) ([]model.Feedback, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) List(ctx context.Context) ([]model.Feedback, error) {
	return s.repo.List(ctx)
}
