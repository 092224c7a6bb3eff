// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// ManualActivityModel represents the manual_activities table in the database.
type ManualActivityModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description  string          `gorm:"type:varchar(255)"`
	ActivityDate time.Time       `gorm:"type:date;not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ManualActivityModel.
func (ManualActivityModel) TableName() string {
	return "manual_activities"
}

// ToEntity converts a ManualActivityModel to a domain ManualActivity entity.
func (m *ManualActivityModel) ToEntity() *entity.ManualActivity {
	return &entity.ManualActivity{
		ID:           m.ID,
		GoalID:       m.GoalID,
		Amount:       m.Amount,
		Description:  m.Description,
		ActivityDate: m.ActivityDate,
		CreatedAt:    m.CreatedAt,
	}
}

// ManualActivityFromEntity creates a ManualActivityModel from a domain ManualActivity entity.
func ManualActivityFromEntity(activity *entity.ManualActivity) *ManualActivityModel {
	return &ManualActivityModel{
		ID:           activity.ID,
		GoalID:       activity.GoalID,
		Amount:       activity.Amount,
		Description:  activity.Description,
		ActivityDate: activity.ActivityDate,
		CreatedAt:    activity.CreatedAt,
	}
}
