// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// DocumentModel represents the documents table in the database.
type DocumentModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	ContentType string         `gorm:"type:varchar(100)"`
	SizeBytes   int64          `gorm:"not null;default:0"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the DocumentModel.
func (DocumentModel) TableName() string {
	return "documents"
}

// ToEntity converts a DocumentModel to a domain Document entity.
func (m *DocumentModel) ToEntity() *entity.Document {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Document{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		ContentType: m.ContentType,
		SizeBytes:   m.SizeBytes,
		Tags:        []string(m.Tags),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// DocumentFromEntity creates a DocumentModel from a domain Document entity.
func DocumentFromEntity(document *entity.Document) *DocumentModel {
	var deletedAt gorm.DeletedAt
	if document.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *document.DeletedAt, Valid: true}
	}

	return &DocumentModel{
		ID:          document.ID,
		UserID:      document.UserID,
		Name:        document.Name,
		ContentType: document.ContentType,
		SizeBytes:   document.SizeBytes,
		Tags:        pq.StringArray(document.Tags),
		CreatedAt:   document.CreatedAt,
		UpdatedAt:   document.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
