// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database. The
// composite unique index makes milestone inserts idempotent: the same
// crossing can only ever produce one row.
type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	GoalID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_notifications_goal_milestone_type"`
	Type      string     `gorm:"type:varchar(30);not null;uniqueIndex:idx_notifications_goal_milestone_type"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Message   string     `gorm:"type:text;not null"`
	Milestone int        `gorm:"not null;default:0;uniqueIndex:idx_notifications_goal_milestone_type"`
	Read      bool       `gorm:"not null;default:false"`
	EmailedAt *time.Time `gorm:"type:timestamp;index"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		GoalID:    m.GoalID,
		Type:      entity.NotificationType(m.Type),
		Title:     m.Title,
		Message:   m.Message,
		Milestone: m.Milestone,
		Read:      m.Read,
		EmailedAt: m.EmailedAt,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain Notification entity.
func NotificationFromEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		GoalID:    notification.GoalID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Message:   notification.Message,
		Milestone: notification.Milestone,
		Read:      notification.Read,
		EmailedAt: notification.EmailedAt,
		CreatedAt: notification.CreatedAt,
	}
}
