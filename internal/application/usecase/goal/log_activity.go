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
	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// LogActivityInput represents the input for logging a manual activity.
type LogActivityInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	Amount       decimal.Decimal
	Description  string
	ActivityDate *time.Time // Optional, defaults to now
}

// LogActivityOutput represents the output of logging a manual activity.
type LogActivityOutput struct {
	Activity *entity.ManualActivity
}

// LogActivityUseCase handles manual activity logging. Amounts may be
// negative, to correct an earlier entry.
type LogActivityUseCase struct {
	goalRepo     adapter.GoalRepository
	activityRepo adapter.ManualActivityRepository
}

// NewLogActivityUseCase creates a new LogActivityUseCase instance.
func NewLogActivityUseCase(goalRepo adapter.GoalRepository, activityRepo adapter.ManualActivityRepository) *LogActivityUseCase {
	return &LogActivityUseCase{
		goalRepo:     goalRepo,
		activityRepo: activityRepo,
	}
}

// Execute performs the activity logging.
func (uc *LogActivityUseCase) Execute(ctx context.Context, input LogActivityInput) (*LogActivityOutput, error) {
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

	// Check if user is authorized to log against this goal
	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to log activity on this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	// Only active goals accept new activity
	if goal.Status != entity.GoalStatusActive {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotActive,
			"cannot log activity on a completed or expired goal",
			domainerror.ErrGoalNotActive,
		)
	}

	activityDate := time.Now().UTC()
	if input.ActivityDate != nil {
		activityDate = *input.ActivityDate
	}

	activity := entity.NewManualActivity(input.GoalID, input.Amount, input.Description, activityDate)

	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create manual activity: %w", err)
	}

	return &LogActivityOutput{
		Activity: activity,
	}, nil
}
