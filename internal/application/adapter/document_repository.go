// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// DocumentRepository defines the interface for vault-document metadata operations.
type DocumentRepository interface {
	// Create creates a new document metadata row in the database.
	Create(ctx context.Context, document *entity.Document) error

	// CountByUserID returns the number of live (not soft-deleted) documents
	// the user has in the vault.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
