// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder. Identity itself is owned by the hosted
// auth provider; this row carries the profile data the engine needs.
type User struct {
	ID         uuid.UUID
	Email      string
	Name       string
	Plan       PlanTier
	GoalAlerts bool // Whether goal notifications are also delivered by email
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser creates a new User with default values.
func NewUser(id uuid.UUID, email, name string) *User {
	now := time.Now().UTC()
	return &User{
		ID:         id,
		Email:      email,
		Name:       name,
		Plan:       PlanTierFree,
		GoalAlerts: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
