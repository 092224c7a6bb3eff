// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/application/usecase/progress"
	"github.com/docuintelli/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// GoalOutput represents a single goal in the output, with the progress
// percentage derived from the stored amounts.
type GoalOutput struct {
	Goal        *entity.Goal
	ProgressPct float64
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	var (
		goals []*entity.Goal
		err   error
	)
	if input.ActiveOnly {
		goals, err = uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	} else {
		goals, err = uc.goalRepo.FindByUserID(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, &GoalOutput{
			Goal:        g,
			ProgressPct: progress.ProgressPercent(g.CurrentAmount, g.TargetAmount),
		})
	}

	return output, nil
}
