package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
)

func TestWithdrawalService_Request(t *testing.T) {
	tests := []struct {
		name          string
		worker        *model.User
		coins         decimal.Decimal
		setupMock     func(*MockLedgerRepository)
		expectedError error
	}{
		{
			name:   "successful request records payout amount",
			worker: &model.User{Email: "worker@example.com", Name: "Worker", Coins: decimal.NewFromInt(200)},
			coins:  decimal.NewFromInt(100),
			setupMock: func(m *MockLedgerRepository) {
				m.On("CreateWithdrawal", mock.Anything, mock.MatchedBy(func(w *model.Withdrawal) bool {
					// 100 coins at 20 coins/dollar pays out 5 dollars
					return w.Coins.Equal(decimal.NewFromInt(100)) &&
						w.Amount.Equal(decimal.NewFromInt(5))
				})).Return(nil)
			},
		},
		{
			name:          "requested more than balance",
			worker:        &model.User{Email: "worker@example.com", Coins: decimal.NewFromInt(5)},
			coins:         decimal.NewFromInt(10),
			setupMock:     func(m *MockLedgerRepository) {},
			expectedError: apperrors.ErrInsufficientCoins,
		},
		{
			name:          "non-positive amount rejected",
			worker:        &model.User{Email: "worker@example.com", Coins: decimal.NewFromInt(50)},
			coins:         decimal.Zero,
			setupMock:     func(m *MockLedgerRepository) {},
			expectedError: apperrors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWithdrawals := new(MockWithdrawalRepository)
			mockLedger := new(MockLedgerRepository)
			tt.setupMock(mockLedger)

			svc := NewWithdrawalService(mockWithdrawals, mockLedger, nil)
			withdrawal, err := svc.Request(context.Background(), tt.worker, tt.coins, "bkash", "0123456789")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, withdrawal)
				mockLedger.AssertNotCalled(t, "CreateWithdrawal", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, withdrawal)
			}
			mockLedger.AssertExpectations(t)
		})
	}
}

func TestWithdrawalService_Delete_NotFound(t *testing.T) {
	mockWithdrawals := new(MockWithdrawalRepository)
	mockLedger := new(MockLedgerRepository)

	id := newUUID(t)
	mockWithdrawals.On("Delete", mock.Anything, id).Return(gormNotFound())

	svc := NewWithdrawalService(mockWithdrawals, mockLedger, nil)
	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
}
