package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sharearahammed/mega-earning-server/internal/cache"
	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/repository"
)

// SubmissionService handles worker submissions and their review.
type SubmissionService interface {
	// Create records a worker's claim against a task, snapshotting the
	// task's title, creator and payable amount.
	Create(ctx context.Context, taskID uuid.UUID, worker *model.User, detail string) (*model.Submission, error)
	ListByWorker(ctx context.Context, workerEmail string, offset, limit int) ([]model.Submission, int64, error)
	ListPendingByCreator(ctx context.Context, creatorEmail string) ([]model.Submission, error)
	// Approve credits the worker; only the task's creator may approve, and
	// only once.
	Approve(ctx context.Context, submissionID uuid.UUID, actorEmail string) (*model.Submission, error)
	// Reject finalizes the submission with no coin effect.
	Reject(ctx context.Context, submissionID uuid.UUID, actorEmail string) (*model.Submission, error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	taskRepo       repository.TaskRepository
	ledger         repository.LedgerRepository
	cache          *cache.Client
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	taskRepo repository.TaskRepository,
	ledger repository.LedgerRepository,
	cache *cache.Client,
) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		taskRepo:       taskRepo,
		ledger:         ledger,
		cache:          cache,
	}
}

func (s *submissionService) Create(ctx context.Context, taskID uuid.UUID, worker *model.User, detail string) (*model.Submission, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	submission := &model.Submission{
		TaskID:        task.ID,
		TaskTitle:     task.Title,
		WorkerEmail:   worker.Email,
		WorkerName:    worker.Name,
		CreatorEmail:  task.CreatorEmail,
		PayableAmount: task.PayableAmount,
		Detail:        detail,
		Status:        model.SubmissionStatusPending,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return submission, nil
}

func (s *submissionService) ListByWorker(ctx context.Context, workerEmail string, offset, limit int) ([]model.Submission, int64, error) {
	return s.submissionRepo.ListByWorker(ctx, workerEmail, offset, limit)
}

func (s *submissionService) ListPendingByCreator(ctx context.Context, creatorEmail string) ([]model.Submission, error) {
	return s.submissionRepo.ListPendingByCreator(ctx, creatorEmail)
}

func (s *submissionService) Approve(ctx context.Context, submissionID uuid.UUID, actorEmail string) (*model.Submission, error) {
	if err := s.authorizeReview(ctx, submissionID, actorEmail); err != nil {
		return nil, err
	}

	submission, err := s.ledger.ApproveSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, UserCacheKey(submission.WorkerEmail))
	return submission, nil
}

func (s *submissionService) Reject(ctx context.Context, submissionID uuid.UUID, actorEmail string) (*model.Submission, error) {
	if err := s.authorizeReview(ctx, submissionID, actorEmail); err != nil {
		return nil, err
	}
	return s.ledger.RejectSubmission(ctx, submissionID)
}

// authorizeReview confirms the actor created the task the submission targets.
// The ledger re-checks the pending status under its lock; this check exists
// to fail fast with the right error before opening a transaction.
func (s *submissionService) authorizeReview(ctx context.Context, submissionID uuid.UUID, actorEmail string) error {
	submission, err := s.submissionRepo.FindByID(ctx, submissionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrSubmissionNotFound
		}
		return err
	}
	if submission.CreatorEmail != actorEmail {
		return apperrors.ErrForbidden
	}
	if submission.Status.Terminal() {
		return apperrors.ErrSubmissionFinalized
	}
	return nil
}
