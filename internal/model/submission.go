package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SubmissionStatus represents the review state of a submission.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approve"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Terminal reports whether the status admits no further transition.
func (s SubmissionStatus) Terminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// Submission is a worker's claim of task completion. Task title, creator and
// payable amount are snapshotted at submit time so the record survives task
// deletion. Approval credits the worker by PayableAmount.
type Submission struct {
	ID            uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	TaskID        uuid.UUID        `json:"task_id" gorm:"type:char(36);not null;index"`
	TaskTitle     string           `json:"task_title" gorm:"size:255;not null"`
	WorkerEmail   string           `json:"worker_email" gorm:"size:255;not null;index"`
	WorkerName    string           `json:"worker_name" gorm:"size:255"`
	CreatorEmail  string           `json:"creator_email" gorm:"size:255;not null;index"`
	PayableAmount decimal.Decimal  `json:"payable_amount" gorm:"type:decimal(20,2);not null"`
	Detail        string           `json:"detail" gorm:"type:text"`
	Status        SubmissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
