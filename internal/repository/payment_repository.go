package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sharearahammed/mega-earning-server/internal/model"
)

// PaymentRepository defines payment record read operations. Insertion runs
// through the ledger repository.
type PaymentRepository interface {
	ListByBuyer(ctx context.Context, buyerEmail string) ([]model.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// ListByBuyer lists a buyer's payment history, newest first.
func (r *paymentRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).
		Where("buyer_email = ?", buyerEmail).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
