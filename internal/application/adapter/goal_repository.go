// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations,
// including the goal-to-account link table.
type GoalRepository interface {
	// Create creates a new goal and its account links in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID, links included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user, links included.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindActiveByUserID retrieves the user's active goals, links included.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// ExpireOverdue marks the user's active goals whose target date is before
	// now as expired and returns them.
	ExpireOverdue(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Goal, error)

	// Update updates a goal's user-editable fields and replaces its links.
	Update(ctx context.Context, goal *entity.Goal) error

	// UpdateProgress persists the engine-derived fields of a goal
	// (current_amount, status, milestone flags, completion timestamp) in a
	// single update.
	UpdateProgress(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal and its account links from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindLinkedAccountIDs retrieves the account links for the given goals in
	// one query, keyed by goal ID.
	FindLinkedAccountIDs(ctx context.Context, goalIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
}
