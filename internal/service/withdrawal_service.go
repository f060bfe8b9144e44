package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sharearahammed/mega-earning-server/internal/cache"
	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/repository"
)

// WithdrawalService handles worker cash-out requests.
type WithdrawalService interface {
	// Request debits the worker's coins and records the request. The coin
	// amount must be positive and within the worker's balance.
	Request(ctx context.Context, worker *model.User, coins decimal.Decimal, paymentSystem, accountNumber string) (*model.Withdrawal, error)
	ListByWorker(ctx context.Context, workerEmail string) ([]model.Withdrawal, error)
	List(ctx context.Context) ([]model.Withdrawal, error)
	// Delete removes a processed request; the coins were already debited.
	Delete(ctx context.Context, id uuid.UUID) error
}

type withdrawalService struct {
	withdrawalRepo repository.WithdrawalRepository
	ledger         repository.LedgerRepository
	cache          *cache.Client
}

// NewWithdrawalService creates a new withdrawal service.
func NewWithdrawalService(withdrawalRepo repository.WithdrawalRepository, ledger repository.LedgerRepository, cache *cache.Client) WithdrawalService {
	return &withdrawalService{
		withdrawalRepo: withdrawalRepo,
		ledger:         ledger,
		cache:          cache,
	}
}

func (s *withdrawalService) Request(ctx context.Context, worker *model.User, coins decimal.Decimal, paymentSystem, accountNumber string) (*model.Withdrawal, error) {
	if coins.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}
	if worker.Coins.LessThan(coins) {
		return nil, apperrors.ErrInsufficientCoins
	}

	withdrawal := &model.Withdrawal{
		WorkerEmail:   worker.Email,
		WorkerName:    worker.Name,
		Coins:         coins,
		Amount:        model.PayoutAmount(coins),
		PaymentSystem: paymentSystem,
		AccountNumber: accountNumber,
	}
	if err := s.ledger.CreateWithdrawal(ctx, withdrawal); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, UserCacheKey(worker.Email))
	return withdrawal, nil
}

func (s *withdrawalService) ListByWorker(ctx context.Context, workerEmail string) ([]model.Withdrawal, error) {
	return s.withdrawalRepo.ListByWorker(ctx, workerEmail)
}

func (s *withdrawalService) List(ctx context.Context) ([]model.Withdrawal, error) {
	return s.withdrawalRepo.List(ctx)
}

func (s *withdrawalService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.withdrawalRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrWithdrawalNotFound
		}
		return err
	}
	return nil
}
