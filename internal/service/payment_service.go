package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sharearahammed/mega-earning-server/internal/cache"
	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/payments"
	"github.com/sharearahammed/mega-earning-server/internal/repository"
)

// PaymentService handles coin purchases. The processor confirms the charge
// on the client side; this service only opens intents and records confirmed
// payments.
type PaymentService interface {
	// CreateIntent opens a payment intent for a dollar amount and returns
	// the client secret.
	CreateIntent(ctx context.Context, amount decimal.Decimal) (string, error)
	// Record stores a confirmed payment and credits the buyer's coins.
	Record(ctx context.Context, buyerEmail string, coins, amountPaid decimal.Decimal, transactionID string) (*model.Payment, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	ledger      repository.LedgerRepository
	intents     payments.IntentClient
	cache       *cache.Client
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	ledger repository.LedgerRepository,
	intents payments.IntentClient,
	cache *cache.Client,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		ledger:      ledger,
		intents:     intents,
		cache:       cache,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, amount decimal.Decimal) (string, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", apperrors.ErrInvalidAmount
	}

	secret, err := s.intents.CreateIntent(amount, "usd")
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return secret, nil
}

func (s *paymentService) Record(ctx context.Context, buyerEmail string, coins, amountPaid decimal.Decimal, transactionID string) (*model.Payment, error) {
	if coins.LessThanOrEqual(decimal.Zero) || amountPaid.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}

	payment := &model.Payment{
		BuyerEmail:    buyerEmail,
		Coins:         coins,
		AmountPaid:    amountPaid,
		TransactionID: transactionID,
	}
	if err := s.ledger.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, UserCacheKey(buyerEmail))
	return payment, nil
}

func (s *paymentService) ListByBuyer(ctx context.Context, buyerEmail string) ([]model.Payment, error) {
	return s.paymentRepo.ListByBuyer(ctx, buyerEmail)
}
