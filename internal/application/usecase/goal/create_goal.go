// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/application/usecase/progress"
	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID           uuid.UUID
	Name             string
	Type             entity.GoalType
	TargetAmount     decimal.Decimal
	Period           *entity.GoalPeriod // Optional, spending_limit only, defaults to monthly
	StartDate        *time.Time         // Optional, defaults to now
	TargetDate       *time.Time         // Optional
	LinkedAccountIDs []uuid.UUID
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic, including the one-time
// baseline snapshot for savings and debt-paydown goals.
type CreateGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	accountRepo adapter.AccountRepository
	baseline    *progress.BaselineCalculator
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(
	goalRepo adapter.GoalRepository,
	accountRepo adapter.AccountRepository,
	baseline *progress.BaselineCalculator,
) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:    goalRepo,
		accountRepo: accountRepo,
		baseline:    baseline,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	// Validate name
	if input.Name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal name is required",
			nil,
		)
	}

	// Validate goal type
	if !isValidGoalType(input.Type) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"type must be 'savings', 'spending_limit', 'debt_paydown', 'income_target', or 'ad_hoc'",
			domainerror.ErrInvalidGoalType,
		)
	}

	// Validate target amount
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	// Apply period default; only spending-limit goals use it
	period := entity.GoalPeriodMonthly
	if input.Period != nil {
		if !isValidGoalPeriod(*input.Period) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPeriod,
				"period must be 'monthly', 'weekly', or 'yearly'",
				domainerror.ErrInvalidGoalPeriod,
			)
		}
		period = *input.Period
	}

	// Validate linked accounts belong to user
	if len(input.LinkedAccountIDs) > 0 {
		accounts, err := uc.accountRepo.FindByIDs(ctx, input.UserID, input.LinkedAccountIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load linked accounts: %w", err)
		}
		if len(accounts) != len(input.LinkedAccountIDs) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeUnauthorizedGoalAccess,
				"one or more linked accounts do not belong to user",
				domainerror.ErrUnauthorizedGoalAccess,
			)
		}
	}

	// Snapshot the baseline (zero for types without a baseline concept)
	baselineAmount, err := uc.baseline.Calculate(ctx, input.UserID, input.Type, input.LinkedAccountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate goal baseline: %w", err)
	}

	startDate := time.Now().UTC()
	if input.StartDate != nil {
		startDate = *input.StartDate
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Name,
		input.Type,
		input.TargetAmount,
		baselineAmount,
		period,
		startDate,
		input.TargetDate,
		input.LinkedAccountIDs,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

// isValidGoalType validates the goal type.
func isValidGoalType(goalType entity.GoalType) bool {
	switch goalType {
	case entity.GoalTypeSavings,
		entity.GoalTypeSpendingLimit,
		entity.GoalTypeDebtPaydown,
		entity.GoalTypeIncomeTarget,
		entity.GoalTypeAdHoc:
		return true
	}
	return false
}

// isValidGoalPeriod validates the goal period.
func isValidGoalPeriod(period entity.GoalPeriod) bool {
	return period == entity.GoalPeriodMonthly ||
		period == entity.GoalPeriodWeekly ||
		period == entity.GoalPeriodYearly
}
