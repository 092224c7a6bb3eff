// Package progress implements the goal-progress computation engine.
package progress

import (
	"testing"
	"time"

	"github.com/docuintelli/backend/internal/domain/entity"
)

func TestPeriodStart(t *testing.T) {
	tests := []struct {
		name     string
		period   entity.GoalPeriod
		now      time.Time
		expected time.Time
	}{
		{
			name:     "weekly from a wednesday returns the same week's monday",
			period:   entity.GoalPeriodWeekly,
			now:      time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "weekly from a monday returns the same day",
			period:   entity.GoalPeriodWeekly,
			now:      time.Date(2025, 3, 10, 0, 0, 1, 0, time.UTC),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "weekly from a sunday returns the previous monday",
			period:   entity.GoalPeriodWeekly,
			now:      time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "weekly crosses a month boundary",
			period:   entity.GoalPeriodWeekly,
			now:      time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monthly returns the first of the month",
			period:   entity.GoalPeriodMonthly,
			now:      time.Date(2025, 3, 28, 12, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "yearly returns january first",
			period:   entity.GoalPeriodYearly,
			now:      time.Date(2025, 11, 5, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "unknown period defaults to monthly",
			period:   entity.GoalPeriod(""),
			now:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodStart(tt.period, tt.now)
			if !got.Equal(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestPeriodStartKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, 3, 12, 1, 0, 0, 0, loc)

	got := PeriodStart(entity.GoalPeriodWeekly, now)

	if got.Location() != loc {
		t.Errorf("expected location %v, got %v", loc, got.Location())
	}
}
