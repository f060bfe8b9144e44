package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the platform role assigned to a user.
type Role string

const (
	RoleWorker      Role = "worker"
	RoleTaskCreator Role = "taskCreator"
	RoleAdmin       Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleWorker, RoleTaskCreator, RoleAdmin:
		return true
	}
	return false
}

// SignupCoins returns the coin bonus granted on first login for the role.
func (r Role) SignupCoins() decimal.Decimal {
	if r == RoleTaskCreator {
		return decimal.NewFromInt(50)
	}
	return decimal.NewFromInt(10)
}

// User represents a platform member identified by email.
// Coins are mutated only through ledger operations.
type User struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Email     string          `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PhotoURL  string          `json:"photo_url,omitempty" gorm:"size:512"`
	Role      Role            `json:"role" gorm:"type:varchar(20);not null;default:'worker';index"`
	Coins     decimal.Decimal `json:"coins" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
