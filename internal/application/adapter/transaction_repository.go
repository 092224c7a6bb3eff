// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger-transaction persistence
// operations. Transactions are produced by the external sync and are immutable
// for the engine's purposes.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindPostedByAccountIDs retrieves all non-pending transactions for the
	// user restricted to the given account IDs.
	FindPostedByAccountIDs(ctx context.Context, userID uuid.UUID, accountIDs []uuid.UUID) ([]*entity.Transaction, error)
}
