// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents one file stored in the user's vault. The engine only
// needs metadata; file contents live in object storage and are out of scope.
type Document struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	ContentType string
	SizeBytes   int64
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewDocument creates a new Document entity.
func NewDocument(userID uuid.UUID, name, contentType string, sizeBytes int64, tags []string) *Document {
	now := time.Now().UTC()

	return &Document{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		ContentType: contentType,
		SizeBytes:   sizeBytes,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
