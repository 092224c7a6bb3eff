// Package cache implements Redis-backed adapters.
package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestLock(t *testing.T) *recalculationLock {
	t.Helper()
	miniRedis, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(miniRedis.Close)

	client := redis.NewClient(&redis.Options{Addr: miniRedis.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &recalculationLock{client: client}
}

func TestRecalculationLock(t *testing.T) {
	ctx := context.Background()
	lock := newTestLock(t)
	userID := uuid.New()

	acquired, err := lock.Acquire(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acquired {
		t.Fatal("expected first acquire to succeed")
	}

	acquired, err = lock.Acquire(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acquired {
		t.Fatal("expected second acquire to be rejected while held")
	}

	// A different user is not blocked
	acquired, err = lock.Acquire(ctx, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acquired {
		t.Fatal("expected another user's acquire to succeed")
	}

	if err := lock.Release(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acquired, err = lock.Acquire(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acquired {
		t.Fatal("expected acquire to succeed after release")
	}
}
