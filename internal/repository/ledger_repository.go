package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
)

// LedgerRepository is the only writer of coin balances. Every method pairs a
// store mutation with its balance mutation in one transaction, locking the
// affected user row and checking the precondition under the lock, so both
// succeed or both roll back and a balance can never go negative.
type LedgerRepository interface {
	// CreateTask inserts the task and debits the creator by its total payable.
	CreateTask(ctx context.Context, task *model.Task) error
	// DeleteTask removes the task, rejects its still-pending submissions so
	// they cannot be approved against the refunded budget, and refunds the
	// creator for undelivered units only: (quantity - approved) * amount.
	// Returns the refund.
	DeleteTask(ctx context.Context, taskID uuid.UUID) (decimal.Decimal, error)
	// ApproveSubmission flips pending -> approve and credits the worker by
	// the submission's payable amount. Terminal submissions are a conflict.
	ApproveSubmission(ctx context.Context, submissionID uuid.UUID) (*model.Submission, error)
	// RejectSubmission flips pending -> rejected with no coin effect.
	RejectSubmission(ctx context.Context, submissionID uuid.UUID) (*model.Submission, error)
	// CreateWithdrawal inserts the request and debits the worker by its coin
	// amount, failing with a conflict when the balance is insufficient.
	CreateWithdrawal(ctx context.Context, withdrawal *model.Withdrawal) error
	// CreatePayment inserts the confirmed payment and credits the buyer.
	CreatePayment(ctx context.Context, payment *model.Payment) error
}

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository.
func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// lockForUpdate applies a SELECT ... FOR UPDATE row lock to the query.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// lockUser fetches a user row with a row-level lock for update.
func lockUser(tx *gorm.DB, email string) (*model.User, error) {
	var user model.User
	if err := lockForUpdate(tx).
		Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// pendingForTask scopes a query to a task's still-pending submissions.
func pendingForTask(tx *gorm.DB, taskID uuid.UUID) *gorm.DB {
	return tx.Model(&model.Submission{}).
		Where("task_id = ? AND status = ?", taskID, model.SubmissionStatusPending)
}

// setCoins writes a user's new balance inside the transaction.
func setCoins(tx *gorm.DB, email string, coins decimal.Decimal) error {
	return tx.Model(&model.User{}).
		Where("email = ?", email).
		Update("coins", coins).Error
}

// CreateTask inserts a task and debits the creator atomically.
func (r *ledgerRepository) CreateTask(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		creator, err := lockUser(tx, task.CreatorEmail)
		if err != nil {
			return err
		}

		total := task.TotalPayable()
		if creator.Coins.LessThan(total) {
			return apperrors.ErrInsufficientCoins
		}

		if err := tx.Create(task).Error; err != nil {
			return err
		}
		return setCoins(tx, creator.Email, creator.Coins.Sub(total))
	})
}

// DeleteTask removes a task and refunds the undelivered remainder atomically.
func (r *ledgerRepository) DeleteTask(ctx context.Context, taskID uuid.UUID) (decimal.Decimal, error) {
	refund := decimal.Zero
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := lockForUpdate(tx).
			Where("id = ?", taskID).First(&task).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrTaskNotFound
			}
			return err
		}

		var approved int64
		if err := tx.Model(&model.Submission{}).
			Where("task_id = ? AND status = ?", taskID, model.SubmissionStatusApproved).
			Count(&approved).Error; err != nil {
			return err
		}

		// Pending submissions would otherwise stay approvable after the
		// creator has been refunded for the same units.
		if err := pendingForTask(tx, taskID).
			Update("status", model.SubmissionStatusRejected).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", taskID).Delete(&model.Task{}).Error; err != nil {
			return err
		}

		refund = task.RefundAmount(approved)
		if refund.IsZero() {
			return nil
		}

		creator, err := lockUser(tx, task.CreatorEmail)
		if err != nil {
			// Creator deleted since posting; nothing to credit.
			if err == apperrors.ErrUserNotFound {
				refund = decimal.Zero
				return nil
			}
			return err
		}
		return setCoins(tx, creator.Email, creator.Coins.Add(refund))
	})
	return refund, err
}

// ApproveSubmission credits the worker with the pending -> approve flip.
func (r *ledgerRepository) ApproveSubmission(ctx context.Context, submissionID uuid.UUID) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockPending(tx, submissionID, &submission); err != nil {
			return err
		}

		if err := tx.Model(&submission).
			Update("status", model.SubmissionStatusApproved).Error; err != nil {
			return err
		}

		worker, err := lockUser(tx, submission.WorkerEmail)
		if err != nil {
			return err
		}
		return setCoins(tx, worker.Email, worker.Coins.Add(submission.PayableAmount))
	})
	if err != nil {
		return nil, err
	}
	submission.Status = model.SubmissionStatusApproved
	return &submission, nil
}

// RejectSubmission flips pending -> rejected; no coin movement.
func (r *ledgerRepository) RejectSubmission(ctx context.Context, submissionID uuid.UUID) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockPending(tx, submissionID, &submission); err != nil {
			return err
		}
		return tx.Model(&submission).
			Update("status", model.SubmissionStatusRejected).Error
	})
	if err != nil {
		return nil, err
	}
	submission.Status = model.SubmissionStatusRejected
	return &submission, nil
}

// lockPending fetches a submission with a row lock and rejects terminal ones,
// which makes repeated approvals a conflict instead of a double credit.
func (r *ledgerRepository) lockPending(tx *gorm.DB, id uuid.UUID, dest *model.Submission) error {
	if err := lockForUpdate(tx).
		Where("id = ?", id).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrSubmissionNotFound
		}
		return err
	}
	if dest.Status.Terminal() {
		return apperrors.ErrSubmissionFinalized
	}
	return nil
}

// CreateWithdrawal inserts a withdrawal request and debits the worker atomically.
func (r *ledgerRepository) CreateWithdrawal(ctx context.Context, withdrawal *model.Withdrawal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		worker, err := lockUser(tx, withdrawal.WorkerEmail)
		if err != nil {
			return err
		}

		if worker.Coins.LessThan(withdrawal.Coins) {
			return apperrors.ErrInsufficientCoins
		}

		if err := tx.Create(withdrawal).Error; err != nil {
			return err
		}
		return setCoins(tx, worker.Email, worker.Coins.Sub(withdrawal.Coins))
	})
}

// CreatePayment records a confirmed purchase and credits the buyer atomically.
func (r *ledgerRepository) CreatePayment(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		buyer, err := lockUser(tx, payment.BuyerEmail)
		if err != nil {
			return err
		}

		if err := tx.Create(payment).Error; err != nil {
			// Replayed transaction reference: unique index on transaction_id.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicatePayment
			}
			return err
		}
		return setCoins(tx, buyer.Email, buyer.Coins.Add(payment.Coins))
	})
}
