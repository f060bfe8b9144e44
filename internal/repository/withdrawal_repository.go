package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sharearahammed/mega-earning-server/internal/model"
)

// WithdrawalRepository defines withdrawal persistence operations. Insertion
// runs through the ledger repository; deletion after payout has no coin
// effect and lives here.
type WithdrawalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error)
	ListByWorker(ctx context.Context, workerEmail string) ([]model.Withdrawal, error)
	List(ctx context.Context) ([]model.Withdrawal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type withdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository creates a new withdrawal repository.
func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

// FindByID finds a withdrawal request by ID.
func (r *withdrawalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error) {
	var withdrawal model.Withdrawal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&withdrawal).Error; err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

// ListByWorker lists a worker's withdrawal requests, newest first.
func (r *withdrawalRepository) ListByWorker(ctx context.Context, workerEmail string) ([]model.Withdrawal, error) {
	var withdrawals []model.Withdrawal
	if err := r.db.WithContext(ctx).
		Where("worker_email = ?", workerEmail).
		Order("created_at DESC").
		Find(&withdrawals).Error; err != nil {
		return nil, err
	}
	return withdrawals, nil
}

// List lists all pending withdrawal requests, oldest first for processing.
func (r *withdrawalRepository) List(ctx context.Context) ([]model.Withdrawal, error) {
	var withdrawals []model.Withdrawal
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&withdrawals).Error; err != nil {
		return nil, err
	}
	return withdrawals, nil
}

// Delete removes a processed withdrawal request.
func (r *withdrawalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Withdrawal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
