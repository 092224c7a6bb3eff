// Package cache implements Redis-backed adapters.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/docuintelli/backend/internal/application/adapter"
)

// lockTTL bounds how long a crashed recalculation can hold its lock.
const lockTTL = 30 * time.Second

// recalculationLock implements adapter.RecalculationLock with a Redis SETNX
// key per user.
type recalculationLock struct {
	client *redis.Client
}

// NewRecalculationLock creates a new Redis-backed recalculation lock.
func NewRecalculationLock(client *redis.Client) adapter.RecalculationLock {
	return &recalculationLock{
		client: client,
	}
}

// Acquire attempts to take the user's lock without blocking.
func (l *recalculationLock) Acquire(ctx context.Context, userID uuid.UUID) (bool, error) {
	acquired, err := l.client.SetNX(ctx, lockKey(userID), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire recalculation lock: %w", err)
	}
	return acquired, nil
}

// Release releases the user's lock.
func (l *recalculationLock) Release(ctx context.Context, userID uuid.UUID) error {
	if err := l.client.Del(ctx, lockKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to release recalculation lock: %w", err)
	}
	return nil
}

func lockKey(userID uuid.UUID) string {
	return "recalc_lock:" + userID.String()
}
