// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// InsertBatch inserts the notifications in one statement. Rows that would
	// violate the (goal, milestone, type) uniqueness constraint are silently
	// skipped, which makes milestone notification idempotent across
	// concurrent recalculations.
	InsertBatch(ctx context.Context, notifications []*entity.Notification) error

	// FindByUserID retrieves the user's notifications, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error)

	// MarkRead marks a notification as read.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// FindUnemailed retrieves notifications that have not yet been delivered
	// by email, oldest first.
	FindUnemailed(ctx context.Context, limit int) ([]*entity.Notification, error)

	// MarkEmailed records the email delivery timestamp for a notification.
	MarkEmailed(ctx context.Context, id uuid.UUID) error
}
