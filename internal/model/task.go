package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Task is a unit of paid work posted by a task creator. Creating a task
// debits the creator's coins by TotalPayable up front; deleting it refunds
// the portion not yet paid out to workers.
type Task struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	CreatorEmail   string          `json:"creator_email" gorm:"size:255;not null;index"`
	Title          string          `json:"title" gorm:"size:255;not null"`
	Detail         string          `json:"detail" gorm:"type:text"`
	SubmissionInfo string          `json:"submission_info" gorm:"type:text"`
	ImageURL       string          `json:"image_url,omitempty" gorm:"size:512"`
	Quantity       int             `json:"quantity" gorm:"not null"`
	PayableAmount  decimal.Decimal `json:"payable_amount" gorm:"type:decimal(20,2);not null"`
	CompletionDate time.Time       `json:"completion_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TotalPayable is the full coin cost of the task: quantity * payable amount.
func (t *Task) TotalPayable() decimal.Decimal {
	return t.PayableAmount.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// RefundAmount is the coin refund owed on deletion after approvedCount
// submissions have already been paid out: (quantity - approved) * amount.
func (t *Task) RefundAmount(approvedCount int64) decimal.Decimal {
	remaining := int64(t.Quantity) - approvedCount
	if remaining <= 0 {
		return decimal.Zero
	}
	return t.PayableAmount.Mul(decimal.NewFromInt(remaining))
}
