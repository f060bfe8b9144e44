package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sharearahammed/mega-earning-server/internal/model"
)

// SubmissionRepository defines submission persistence operations. Status
// transitions run through the ledger repository.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.Submission) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error)
	ListByWorker(ctx context.Context, workerEmail string, offset, limit int) ([]model.Submission, int64, error)
	ListPendingByCreator(ctx context.Context, creatorEmail string) ([]model.Submission, error)
	CountApprovedByTask(ctx context.Context, taskID uuid.UUID) (int64, error)
	CountApprovedByWorkers(ctx context.Context, workerEmails []string) (map[string]int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create creates a new submission.
func (r *submissionRepository) Create(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// FindByID finds a submission by ID.
func (r *submissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListByWorker lists a worker's submissions, newest first, with the total
// count for pagination.
func (r *submissionRepository) ListByWorker(ctx context.Context, workerEmail string, offset, limit int) ([]model.Submission, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Submission{}).
		Where("worker_email = ?", workerEmail).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []model.Submission
	q := r.db.WithContext(ctx).
		Where("worker_email = ?", workerEmail).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&submissions).Error; err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

// ListPendingByCreator lists submissions awaiting a creator's review.
func (r *submissionRepository) ListPendingByCreator(ctx context.Context, creatorEmail string) ([]model.Submission, error) {
	var submissions []model.Submission
	if err := r.db.WithContext(ctx).
		Where("creator_email = ? AND status = ?", creatorEmail, model.SubmissionStatusPending).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// CountApprovedByTask counts approved submissions against a task.
func (r *submissionRepository) CountApprovedByTask(ctx context.Context, taskID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Submission{}).
		Where("task_id = ? AND status = ?", taskID, model.SubmissionStatusApproved).
		Count(&count).Error
	return count, err
}

// CountApprovedByWorkers group-counts approved submissions per worker email.
// Workers with no approvals are absent from the result.
func (r *submissionRepository) CountApprovedByWorkers(ctx context.Context, workerEmails []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(workerEmails))
	if len(workerEmails) == 0 {
		return counts, nil
	}

	type row struct {
		WorkerEmail string
		Total       int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).Model(&model.Submission{}).
		Select("worker_email, COUNT(*) AS total").
		Where("worker_email IN ? AND status = ?", workerEmails, model.SubmissionStatusApproved).
		Group("worker_email").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.WorkerEmail] = r.Total
	}
	return counts, nil
}
