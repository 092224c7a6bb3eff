// Package notification contains in-app notification use cases.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/application/adapter"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// MarkReadInput represents the input for marking a notification as read.
type MarkReadInput struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
}

// MarkReadOutput represents the output of marking a notification as read.
type MarkReadOutput struct {
	Success bool
}

// MarkReadUseCase handles marking a notification as read.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks the notification as read. The repository scopes the update to
// the user, so a foreign notification reads as not found.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) (*MarkReadOutput, error) {
	if err := uc.notificationRepo.MarkRead(ctx, input.NotificationID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodeNotificationNotFound,
				"notification not found",
				domainerror.ErrNotificationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return &MarkReadOutput{
		Success: true,
	}, nil
}
