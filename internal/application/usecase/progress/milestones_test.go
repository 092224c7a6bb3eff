// Package progress implements the goal-progress computation engine.
package progress

import (
	"testing"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

func TestAdvanceMilestones(t *testing.T) {
	tests := []struct {
		name            string
		flags           entity.MilestoneFlags
		progressPct     float64
		expectedFlags   entity.MilestoneFlags
		expectedCrossed []int
	}{
		{
			name:            "below all thresholds crosses nothing",
			progressPct:     49.99,
			expectedCrossed: nil,
		},
		{
			name:            "fifty percent crosses the first threshold",
			progressPct:     50,
			expectedFlags:   entity.MilestoneFlags{Half: true},
			expectedCrossed: []int{50},
		},
		{
			name:            "jumping straight to full crosses all three ascending",
			progressPct:     120,
			expectedFlags:   entity.MilestoneFlags{Half: true, ThreeQuarters: true, Full: true},
			expectedCrossed: []int{50, 75, 100},
		},
		{
			name:            "already notified thresholds are not crossed again",
			flags:           entity.MilestoneFlags{Half: true},
			progressPct:     80,
			expectedFlags:   entity.MilestoneFlags{Half: true, ThreeQuarters: true},
			expectedCrossed: []int{75},
		},
		{
			name:            "flags never regress when progress drops",
			flags:           entity.MilestoneFlags{Half: true, ThreeQuarters: true},
			progressPct:     10,
			expectedFlags:   entity.MilestoneFlags{Half: true, ThreeQuarters: true},
			expectedCrossed: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.flags

			gotFlags, gotCrossed := AdvanceMilestones(tt.flags, tt.progressPct)

			if gotFlags != tt.expectedFlags {
				t.Errorf("expected flags %+v, got %+v", tt.expectedFlags, gotFlags)
			}
			if len(gotCrossed) != len(tt.expectedCrossed) {
				t.Fatalf("expected crossed %v, got %v", tt.expectedCrossed, gotCrossed)
			}
			for i, threshold := range tt.expectedCrossed {
				if gotCrossed[i] != threshold {
					t.Errorf("expected crossed %v, got %v", tt.expectedCrossed, gotCrossed)
				}
			}
			if input != tt.flags {
				t.Error("input flags value must not be mutated")
			}
		})
	}
}

func TestMilestoneNotifications(t *testing.T) {
	goal := &entity.Goal{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Emergency fund",
	}

	notifications := MilestoneNotifications(goal, []int{50, 75, 100})

	if len(notifications) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(notifications))
	}

	if notifications[0].Type != entity.NotificationGoalMilestone || notifications[0].Milestone != 50 {
		t.Errorf("expected goal_milestone/50, got %s/%d", notifications[0].Type, notifications[0].Milestone)
	}
	if notifications[1].Type != entity.NotificationGoalMilestone || notifications[1].Milestone != 75 {
		t.Errorf("expected goal_milestone/75, got %s/%d", notifications[1].Type, notifications[1].Milestone)
	}
	if notifications[2].Type != entity.NotificationGoalCompleted || notifications[2].Milestone != 100 {
		t.Errorf("expected goal_completed/100, got %s/%d", notifications[2].Type, notifications[2].Milestone)
	}

	for _, notification := range notifications {
		if notification.GoalID != goal.ID || notification.UserID != goal.UserID {
			t.Error("notification must reference the goal and its owner")
		}
	}
}
