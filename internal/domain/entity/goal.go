// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the kind of financial target a goal tracks.
type GoalType string

const (
	GoalTypeSavings       GoalType = "savings"
	GoalTypeSpendingLimit GoalType = "spending_limit"
	GoalTypeDebtPaydown   GoalType = "debt_paydown"
	GoalTypeIncomeTarget  GoalType = "income_target"
	GoalTypeAdHoc         GoalType = "ad_hoc"
)

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusExpired   GoalStatus = "expired"
)

// GoalPeriod represents the budgeting window for a spending-limit goal.
type GoalPeriod string

const (
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodYearly  GoalPeriod = "yearly"
)

// MilestoneFlags records which progress thresholds have already produced a
// notification. Flags are monotonic while the goal is active: once set they
// are never cleared.
type MilestoneFlags struct {
	Half          bool // 50%
	ThreeQuarters bool // 75%
	Full          bool // 100%
}

// Goal represents a user-defined financial target.
//
// CurrentAmount is a derived, recomputable value owned by the recalculation
// engine; it is never edited directly by the user.
type Goal struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	Type             GoalType
	TargetAmount     decimal.Decimal
	CurrentAmount    decimal.Decimal
	BaselineAmount   decimal.Decimal // Snapshot taken at creation for savings/debt_paydown
	Period           GoalPeriod      // Only meaningful for spending_limit goals
	StartDate        time.Time
	TargetDate       *time.Time
	Status           GoalStatus
	Milestones       MilestoneFlags
	LinkedAccountIDs []uuid.UUID
	CompletedAt      *time.Time
	ExpiredAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewGoal creates a new active Goal entity.
func NewGoal(
	userID uuid.UUID,
	name string,
	goalType GoalType,
	targetAmount decimal.Decimal,
	baselineAmount decimal.Decimal,
	period GoalPeriod,
	startDate time.Time,
	targetDate *time.Time,
	linkedAccountIDs []uuid.UUID,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:               uuid.New(),
		UserID:           userID,
		Name:             name,
		Type:             goalType,
		TargetAmount:     targetAmount,
		CurrentAmount:    decimal.Zero,
		BaselineAmount:   baselineAmount,
		Period:           period,
		StartDate:        startDate,
		TargetDate:       targetDate,
		Status:           GoalStatusActive,
		LinkedAccountIDs: linkedAccountIDs,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsOverdue reports whether an active goal's target date has passed.
func (g *Goal) IsOverdue(now time.Time) bool {
	return g.Status == GoalStatusActive && g.TargetDate != nil && g.TargetDate.Before(now)
}
