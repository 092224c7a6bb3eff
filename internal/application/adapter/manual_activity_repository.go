// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// ManualActivityRepository defines the interface for manual-activity persistence operations.
type ManualActivityRepository interface {
	// Create creates a new manual activity entry in the database.
	Create(ctx context.Context, activity *entity.ManualActivity) error

	// FindByGoalIDs retrieves all activity entries for the given goals in one query.
	FindByGoalIDs(ctx context.Context, goalIDs []uuid.UUID) ([]*entity.ManualActivity, error)

	// DeleteByGoalID removes all activity entries for a goal (goal-deletion cascade).
	DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error
}
