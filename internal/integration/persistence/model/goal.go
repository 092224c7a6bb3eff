// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database. Linked accounts live
// in the goal_account_links join table.
type GoalModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Type           string          `gorm:"type:varchar(20);not null"`
	TargetAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	BaselineAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Period         string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	StartDate      time.Time       `gorm:"type:date;not null"`
	TargetDate     *time.Time      `gorm:"type:date"`
	Status         string          `gorm:"type:varchar(20);not null;default:'active';index"`
	NotifiedHalf   bool            `gorm:"not null;default:false"`
	NotifiedThree  bool            `gorm:"not null;default:false"`
	NotifiedFull   bool            `gorm:"not null;default:false"`
	CompletedAt    *time.Time      `gorm:"type:timestamp"`
	ExpiredAt      *time.Time      `gorm:"type:timestamp"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity. Account links are
// loaded separately by the repository.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           entity.GoalType(m.Type),
		TargetAmount:   m.TargetAmount,
		CurrentAmount:  m.CurrentAmount,
		BaselineAmount: m.BaselineAmount,
		Period:         entity.GoalPeriod(m.Period),
		StartDate:      m.StartDate,
		TargetDate:     m.TargetDate,
		Status:         entity.GoalStatus(m.Status),
		Milestones: entity.MilestoneFlags{
			Half:          m.NotifiedHalf,
			ThreeQuarters: m.NotifiedThree,
			Full:          m.NotifiedFull,
		},
		CompletedAt: m.CompletedAt,
		ExpiredAt:   m.ExpiredAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:             goal.ID,
		UserID:         goal.UserID,
		Name:           goal.Name,
		Type:           string(goal.Type),
		TargetAmount:   goal.TargetAmount,
		CurrentAmount:  goal.CurrentAmount,
		BaselineAmount: goal.BaselineAmount,
		Period:         string(goal.Period),
		StartDate:      goal.StartDate,
		TargetDate:     goal.TargetDate,
		Status:         string(goal.Status),
		NotifiedHalf:   goal.Milestones.Half,
		NotifiedThree:  goal.Milestones.ThreeQuarters,
		NotifiedFull:   goal.Milestones.Full,
		CompletedAt:    goal.CompletedAt,
		ExpiredAt:      goal.ExpiredAt,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}

// GoalAccountLinkModel represents the goal_account_links join table.
type GoalAccountLinkModel struct {
	GoalID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for the GoalAccountLinkModel.
func (GoalAccountLinkModel) TableName() string {
	return "goal_account_links"
}
