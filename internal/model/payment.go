package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment records a confirmed coin purchase. The buyer's coins are credited
// when the record is inserted.
type Payment struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	BuyerEmail    string          `json:"buyer_email" gorm:"size:255;not null;index"`
	Coins         decimal.Decimal `json:"coins" gorm:"type:decimal(20,2);not null"`
	AmountPaid    decimal.Decimal `json:"amount_paid" gorm:"type:decimal(20,2);not null"` // dollars
	TransactionID string          `json:"transaction_id" gorm:"size:255;not null;uniqueIndex"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
