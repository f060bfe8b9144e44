package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CoinsPerDollar is the platform exchange rate applied to withdrawals.
var CoinsPerDollar = decimal.NewFromInt(20)

// Withdrawal is a worker's request to cash out coins. The coin amount is
// debited when the request is recorded; an admin deletes the request once
// the payout has been made.
type Withdrawal struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	WorkerEmail   string          `json:"worker_email" gorm:"size:255;not null;index"`
	WorkerName    string          `json:"worker_name" gorm:"size:255"`
	Coins         decimal.Decimal `json:"coins" gorm:"type:decimal(20,2);not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"` // payout in dollars
	PaymentSystem string          `json:"payment_system" gorm:"size:50;not null"`
	AccountNumber string          `json:"account_number" gorm:"size:100;not null"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (w *Withdrawal) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// PayoutAmount converts a coin amount to dollars at the platform rate.
func PayoutAmount(coins decimal.Decimal) decimal.Decimal {
	return coins.Div(CoinsPerDollar)
}
