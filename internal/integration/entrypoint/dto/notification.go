// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goal_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Milestone int       `json:"milestone,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationListResponse converts domain notifications to a list DTO.
func ToNotificationListResponse(notifications []*entity.Notification) NotificationListResponse {
	response := NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}
	for _, n := range notifications {
		response.Notifications = append(response.Notifications, NotificationResponse{
			ID:        n.ID.String(),
			GoalID:    n.GoalID.String(),
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Milestone: n.Milestone,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return response
}
