// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// RecalculationLock provides per-user mutual exclusion around goal
// recalculation. Without it, two concurrent recalculations can both observe
// un-notified milestone flags and double-write.
type RecalculationLock interface {
	// Acquire attempts to take the lock for the user. It returns false
	// without blocking when another recalculation already holds it.
	Acquire(ctx context.Context, userID uuid.UUID) (bool, error)

	// Release releases the user's lock.
	Release(ctx context.Context, userID uuid.UUID) error
}
