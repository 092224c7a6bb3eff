// Package progress implements the goal-progress computation engine.
package progress

import (
	"github.com/docuintelli/backend/internal/domain/entity"
)

// milestoneThresholds are checked in ascending order.
var milestoneThresholds = []int{50, 75, 100}

// AdvanceMilestones applies the freshly computed progress percentage to the
// goal's milestone flags and returns the new flags plus the thresholds
// crossed for the first time, ascending.
//
// The input value is never mutated and flags never regress: a threshold that
// was already notified stays notified even if the recomputed percentage
// dropped below it.
func AdvanceMilestones(flags entity.MilestoneFlags, progressPct float64) (entity.MilestoneFlags, []int) {
	var crossed []int
	for _, threshold := range milestoneThresholds {
		if progressPct < float64(threshold) {
			continue
		}
		switch threshold {
		case 50:
			if !flags.Half {
				flags.Half = true
				crossed = append(crossed, threshold)
			}
		case 75:
			if !flags.ThreeQuarters {
				flags.ThreeQuarters = true
				crossed = append(crossed, threshold)
			}
		case 100:
			if !flags.Full {
				flags.Full = true
				crossed = append(crossed, threshold)
			}
		}
	}
	return flags, crossed
}

// MilestoneNotifications builds the notifications for the thresholds a goal
// just crossed: goal_milestone for 50/75, goal_completed for 100.
func MilestoneNotifications(goal *entity.Goal, crossed []int) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(crossed))
	for _, milestone := range crossed {
		if milestone == 100 {
			notifications = append(notifications, entity.NewCompletionNotification(goal.UserID, goal.ID, goal.Name))
		} else {
			notifications = append(notifications, entity.NewMilestoneNotification(goal.UserID, goal.ID, goal.Name, milestone))
		}
	}
	return notifications
}
