package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sharearahammed/mega-earning-server/internal/cache"
	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/repository"
)

// TaskService handles the task lifecycle. Creation and deletion are ledger
// operations; updates touch free-text fields only so the funded quantity and
// amount stay consistent with the original debit.
type TaskService interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ListByCreator(ctx context.Context, creatorEmail string) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, actorEmail, title, detail, submissionInfo string) (*model.Task, error)
	// Delete removes the task on behalf of its creator or an admin and
	// returns the refunded amount.
	Delete(ctx context.Context, id uuid.UUID, actor *model.User) (decimal.Decimal, error)
}

type taskService struct {
	taskRepo repository.TaskRepository
	ledger   repository.LedgerRepository
	cache    *cache.Client
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo repository.TaskRepository, ledger repository.LedgerRepository, cache *cache.Client) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		ledger:   ledger,
		cache:    cache,
	}
}

func (s *taskService) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.Quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}
	if task.PayableAmount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}

	if err := s.ledger.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, UserCacheKey(task.CreatorEmail))
	return task, nil
}

func (s *taskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *taskService) ListByCreator(ctx context.Context, creatorEmail string) ([]model.Task, error) {
	return s.taskRepo.ListByCreator(ctx, creatorEmail)
}

func (s *taskService) Update(ctx context.Context, id uuid.UUID, actorEmail, title, detail, submissionInfo string) (*model.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.CreatorEmail != actorEmail {
		return nil, apperrors.ErrForbidden
	}

	task.Title = title
	task.Detail = detail
	task.SubmissionInfo = submissionInfo
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID, actor *model.User) (decimal.Decimal, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	if task.CreatorEmail != actor.Email && actor.Role != model.RoleAdmin {
		return decimal.Zero, apperrors.ErrForbidden
	}

	refund, err := s.ledger.DeleteTask(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	_ = s.cache.Delete(ctx, UserCacheKey(task.CreatorEmail))
	return refund, nil
}
