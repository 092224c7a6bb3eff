// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ManualActivity is a user-logged contribution or expense entry that counts
// toward a goal independently of any linked account's transaction history.
type ManualActivity struct {
	ID           uuid.UUID
	GoalID       uuid.UUID
	Amount       decimal.Decimal
	Description  string
	ActivityDate time.Time
	CreatedAt    time.Time
}

// NewManualActivity creates a new ManualActivity entity.
func NewManualActivity(goalID uuid.UUID, amount decimal.Decimal, description string, activityDate time.Time) *ManualActivity {
	return &ManualActivity{
		ID:           uuid.New(),
		GoalID:       goalID,
		Amount:       amount,
		Description:  description,
		ActivityDate: activityDate,
		CreatedAt:    time.Now().UTC(),
	}
}
