// Package progress implements the goal-progress computation engine.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// dirtyTolerance is the minimum current_amount delta that triggers a
// persistence update. Smaller drifts are rounding noise.
var dirtyTolerance = decimal.RequireFromString("0.01")

// RecalculateGoalsInput represents the input for goal recalculation.
type RecalculateGoalsInput struct {
	UserID uuid.UUID
}

// RecalculateGoalsOutput represents the output of goal recalculation. Goals
// carry the freshly computed values whether or not persistence succeeded for
// each row.
type RecalculateGoalsOutput struct {
	Goals []*entity.Goal
}

// RecalculateGoalsUseCase batch-recomputes all of a user's active goals,
// detects milestone crossings, emits notifications, and persists the goals
// whose value changed.
type RecalculateGoalsUseCase struct {
	goalRepo         adapter.GoalRepository
	accountRepo      adapter.AccountRepository
	transactionRepo  adapter.TransactionRepository
	activityRepo     adapter.ManualActivityRepository
	notificationRepo adapter.NotificationRepository
	lock             adapter.RecalculationLock
	now              func() time.Time
}

// NewRecalculateGoalsUseCase creates a new RecalculateGoalsUseCase instance.
func NewRecalculateGoalsUseCase(
	goalRepo adapter.GoalRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	activityRepo adapter.ManualActivityRepository,
	notificationRepo adapter.NotificationRepository,
	lock adapter.RecalculationLock,
) *RecalculateGoalsUseCase {
	return &RecalculateGoalsUseCase{
		goalRepo:         goalRepo,
		accountRepo:      accountRepo,
		transactionRepo:  transactionRepo,
		activityRepo:     activityRepo,
		notificationRepo: notificationRepo,
		lock:             lock,
		now:              time.Now,
	}
}

// Execute performs the recalculation under the per-user single-flight lock.
func (uc *RecalculateGoalsUseCase) Execute(ctx context.Context, input RecalculateGoalsInput) (*RecalculateGoalsOutput, error) {
	acquired, err := uc.lock.Acquire(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire recalculation lock: %w", err)
	}
	if !acquired {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeRecalculationInProgress,
			"a recalculation is already running for this user",
			domainerror.ErrRecalculationInProgress,
		)
	}
	defer func() {
		if releaseErr := uc.lock.Release(ctx, input.UserID); releaseErr != nil {
			slog.Warn("Failed to release recalculation lock",
				"user_id", input.UserID,
				"error", releaseErr,
			)
		}
	}()

	now := uc.now()

	// Expire overdue goals first so they drop out of the active set for this
	// pass. A failure here aborts the whole call.
	expired, err := uc.goalRepo.ExpireOverdue(ctx, input.UserID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to expire overdue goals: %w", err)
	}
	if len(expired) > 0 {
		notifications := make([]*entity.Notification, 0, len(expired))
		for _, goal := range expired {
			notifications = append(notifications, entity.NewExpiryNotification(goal.UserID, goal.ID, goal.Name))
		}
		if err := uc.notificationRepo.InsertBatch(ctx, notifications); err != nil {
			return nil, fmt.Errorf("failed to insert expiry notifications: %w", err)
		}
	}

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active goals: %w", err)
	}
	if len(goals) == 0 {
		return &RecalculateGoalsOutput{Goals: []*entity.Goal{}}, nil
	}

	goalIDs := make([]uuid.UUID, len(goals))
	for i, goal := range goals {
		goalIDs[i] = goal.ID
	}

	links, err := uc.goalRepo.FindLinkedAccountIDs(ctx, goalIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal account links: %w", err)
	}

	accountIDs := uniqueAccountIDs(links)

	// Account, transaction and activity data have no dependency on each
	// other; fetch them fan-out/fan-in.
	var (
		accounts     []*entity.Account
		transactions []*entity.Transaction
		activities   []*entity.ManualActivity
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var loadErr error
		accounts, loadErr = uc.accountRepo.FindByIDs(groupCtx, input.UserID, accountIDs)
		return loadErr
	})
	group.Go(func() error {
		var loadErr error
		transactions, loadErr = uc.transactionRepo.FindPostedByAccountIDs(groupCtx, input.UserID, accountIDs)
		return loadErr
	})
	group.Go(func() error {
		var loadErr error
		activities, loadErr = uc.activityRepo.FindByGoalIDs(groupCtx, goalIDs)
		return loadErr
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load recalculation data: %w", err)
	}

	activitiesByGoal := make(map[uuid.UUID][]*entity.ManualActivity, len(goals))
	for _, activity := range activities {
		activitiesByGoal[activity.GoalID] = append(activitiesByGoal[activity.GoalID], activity)
	}

	updated := make([]*entity.Goal, 0, len(goals))
	var dirty []*entity.Goal

	for _, goal := range goals {
		goal.LinkedAccountIDs = links[goal.ID]

		manual := ManualContribution(goal, activitiesByGoal[goal.ID], now)
		result := Calculate(goal, accounts, transactions, manual, now)

		newFlags := goal.Milestones
		var crossed []int
		if goal.Type != entity.GoalTypeSpendingLimit {
			// Milestones are meaningless when lower is better.
			newFlags, crossed = AdvanceMilestones(goal.Milestones, result.ProgressPct)
		}

		changed := result.CurrentAmount.Sub(goal.CurrentAmount).Abs().GreaterThan(dirtyTolerance)

		goal.CurrentAmount = result.CurrentAmount
		goal.Milestones = newFlags
		goal.UpdatedAt = now
		if result.ProgressPct >= 100 && goal.Type != entity.GoalTypeSpendingLimit && goal.Status == entity.GoalStatusActive {
			goal.Status = entity.GoalStatusCompleted
			completedAt := now
			goal.CompletedAt = &completedAt
		}

		if len(crossed) > 0 {
			// Milestone crossings are rare and must not be lost: notify and
			// persist amount, flags and status together, immediately.
			if err := uc.notificationRepo.InsertBatch(ctx, MilestoneNotifications(goal, crossed)); err != nil {
				return nil, fmt.Errorf("failed to insert milestone notifications: %w", err)
			}
			if err := uc.goalRepo.UpdateProgress(ctx, goal); err != nil {
				return nil, fmt.Errorf("failed to persist milestone update: %w", err)
			}
		} else if changed {
			dirty = append(dirty, goal)
		}

		updated = append(updated, goal)
	}

	// Cosmetic amount drift is batched: one update per dirty goal at the end
	// of the pass.
	for _, goal := range dirty {
		if err := uc.goalRepo.UpdateProgress(ctx, goal); err != nil {
			return nil, fmt.Errorf("failed to persist goal update: %w", err)
		}
	}

	return &RecalculateGoalsOutput{Goals: updated}, nil
}

// uniqueAccountIDs flattens the link map into a deduplicated ID list.
func uniqueAccountIDs(links map[uuid.UUID][]uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, accountIDs := range links {
		for _, id := range accountIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
