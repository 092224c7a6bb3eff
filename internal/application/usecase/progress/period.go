// Package progress implements the goal-progress computation engine.
package progress

import (
	"time"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// PeriodStart returns the beginning of the budgeting window that contains
// now: the most recent Monday for weekly, January 1 for yearly, and the first
// of the month otherwise. Computed in now's location.
//
// This is the single source of truth for period boundaries; both the progress
// calculator and manual-activity filtering go through it.
func PeriodStart(period entity.GoalPeriod, now time.Time) time.Time {
	loc := now.Location()

	switch period {
	case entity.GoalPeriodWeekly:
		// ISO weeks start on Monday.
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, loc)

	case entity.GoalPeriodYearly:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)

	case entity.GoalPeriodMonthly:
		fallthrough
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	}
}
