// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// AccountRepository defines the interface for linked-account persistence operations.
// Accounts are created by the external aggregator sync; the engine only reads them.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUserID retrieves all accounts for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// FindByIDs retrieves the user's accounts whose IDs are in the given set.
	FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Account, error)
}
