// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Plan       string    `gorm:"type:varchar(20);not null;default:'free'"`
	GoalAlerts bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:         m.ID,
		Email:      m.Email,
		Name:       m.Name,
		Plan:       entity.PlanTier(m.Plan),
		GoalAlerts: m.GoalAlerts,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Plan:       string(user.Plan),
		GoalAlerts: user.GoalAlerts,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
