// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/application/usecase/progress"
	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left
// unchanged.
type UpdateGoalInput struct {
	GoalID           uuid.UUID
	UserID           uuid.UUID
	Name             *string
	TargetAmount     *decimal.Decimal
	TargetDate       *time.Time
	ClearTargetDate  bool
	Period           *entity.GoalPeriod
	LinkedAccountIDs []uuid.UUID // nil leaves links unchanged, empty slice unlinks all
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic. Changing the linked accounts
// re-snapshots the baseline, since the old one measured a different set.
type UpdateGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	accountRepo adapter.AccountRepository
	baseline    *progress.BaselineCalculator
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(
	goalRepo adapter.GoalRepository,
	accountRepo adapter.AccountRepository,
	baseline *progress.BaselineCalculator,
) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:    goalRepo,
		accountRepo: accountRepo,
		baseline:    baseline,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	// Check if user is authorized to modify this goal
	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to modify this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"goal name cannot be empty",
				nil,
			)
		}
		goal.Name = *input.Name
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.ClearTargetDate {
		goal.TargetDate = nil
	} else if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}

	if input.Period != nil {
		if !isValidGoalPeriod(*input.Period) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPeriod,
				"period must be 'monthly', 'weekly', or 'yearly'",
				domainerror.ErrInvalidGoalPeriod,
			)
		}
		goal.Period = *input.Period
	}

	if input.LinkedAccountIDs != nil {
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

		baselineAmount, err := uc.baseline.Calculate(ctx, input.UserID, goal.Type, input.LinkedAccountIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to recalculate goal baseline: %w", err)
		}
		goal.LinkedAccountIDs = input.LinkedAccountIDs
		goal.BaselineAmount = baselineAmount
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
