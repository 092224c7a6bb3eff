// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the kind of in-app notification.
type NotificationType string

const (
	NotificationGoalMilestone NotificationType = "goal_milestone"
	NotificationGoalCompleted NotificationType = "goal_completed"
	NotificationGoalExpired   NotificationType = "goal_expired"
)

// Notification is an in-app message created as a side effect of a milestone
// crossing or goal expiry. The (goal, milestone, type) triple is unique at
// the persistence layer, so a crossing can never notify twice.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	GoalID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Milestone int // 50, 75 or 100; 0 for expiry notifications
	Read      bool
	EmailedAt *time.Time
	CreatedAt time.Time
}

// NewMilestoneNotification creates the notification for a 50% or 75%
// milestone crossing.
func NewMilestoneNotification(userID, goalID uuid.UUID, goalName string, milestone int) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		GoalID:    goalID,
		Type:      NotificationGoalMilestone,
		Title:     fmt.Sprintf("%d%% milestone reached", milestone),
		Message:   fmt.Sprintf("You're %d%% of the way to \"%s\". Keep going!", milestone, goalName),
		Milestone: milestone,
		CreatedAt: time.Now().UTC(),
	}
}

// NewCompletionNotification creates the notification for the 100% crossing.
func NewCompletionNotification(userID, goalID uuid.UUID, goalName string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		GoalID:    goalID,
		Type:      NotificationGoalCompleted,
		Title:     "Goal completed",
		Message:   fmt.Sprintf("Congratulations! You reached your goal \"%s\".", goalName),
		Milestone: 100,
		CreatedAt: time.Now().UTC(),
	}
}

// NewExpiryNotification creates the notification for a goal that passed its
// target date without completing.
func NewExpiryNotification(userID, goalID uuid.UUID, goalName string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		GoalID:    goalID,
		Type:      NotificationGoalExpired,
		Title:     "Goal expired",
		Message:   fmt.Sprintf("Your goal \"%s\" passed its target date.", goalName),
		CreatedAt: time.Now().UTC(),
	}
}
