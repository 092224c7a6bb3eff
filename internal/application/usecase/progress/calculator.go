// Package progress implements the goal-progress computation engine.
package progress

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/domain/entity"
)

var (
	hundred        = decimal.NewFromInt(100)
	maxProgressPct = decimal.NewFromInt(999)
)

// Result holds the derived progress values for one goal.
type Result struct {
	CurrentAmount decimal.Decimal
	ProgressPct   float64
}

// ProgressPercent computes the progress percentage, rounded to two places and
// clamped to [0, 999]. A non-positive target always yields 0.
func ProgressPercent(current, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}

	pct := current.Div(target).Mul(hundred).Round(2)
	if pct.IsNegative() {
		return 0
	}
	if pct.GreaterThan(maxProgressPct) {
		pct = maxProgressPct
	}
	return pct.InexactFloat64()
}

// ManualContribution sums the manual-activity amounts that count toward the
// goal: only entries inside the current period for spending-limit goals, the
// lifetime sum for everything else. The result is rounded to two places.
func ManualContribution(goal *entity.Goal, activities []*entity.ManualActivity, now time.Time) decimal.Decimal {
	var cutoff time.Time
	if goal.Type == entity.GoalTypeSpendingLimit {
		cutoff = PeriodStart(goal.Period, now)
	}

	total := decimal.Zero
	for _, activity := range activities {
		if activity.GoalID != goal.ID {
			continue
		}
		if goal.Type == entity.GoalTypeSpendingLimit && activity.ActivityDate.Before(cutoff) {
			continue
		}
		total = total.Add(activity.Amount)
	}
	return total.Round(2)
}

// Calculate computes a goal's current amount and progress percentage.
//
// accounts and transactions are the user's full sets; the calculation
// restricts itself to the goal's linked accounts. transactions are expected
// to be posted (non-pending) already, but pending entries are skipped
// defensively since they must never count. The computation is total: every
// branch produces a defined numeric result and unknown goal types yield 0.
func Calculate(
	goal *entity.Goal,
	accounts []*entity.Account,
	transactions []*entity.Transaction,
	manualAmount decimal.Decimal,
	now time.Time,
) Result {
	linked := make(map[uuid.UUID]bool, len(goal.LinkedAccountIDs))
	for _, id := range goal.LinkedAccountIDs {
		linked[id] = true
	}

	// With no linked accounts, progress is driven entirely by manual entries
	// (ad-hoc goals keep their own branch below).
	if len(linked) == 0 && goal.Type != entity.GoalTypeAdHoc {
		current := manualAmount.Round(2)
		// Corrections can push the manual sum negative; savings and
		// debt-paydown goals floor at zero here just like the linked branches.
		if current.IsNegative() &&
			(goal.Type == entity.GoalTypeSavings || goal.Type == entity.GoalTypeDebtPaydown) {
			current = decimal.Zero
		}
		return Result{
			CurrentAmount: current,
			ProgressPct:   ProgressPercent(current, goal.TargetAmount),
		}
	}

	var current decimal.Decimal

	switch goal.Type {
	case entity.GoalTypeSavings:
		// Balance growth of non-liability linked accounts above the baseline
		// captured at goal creation.
		balance := decimal.Zero
		for _, account := range accounts {
			if !linked[account.ID] || account.IsLiability() {
				continue
			}
			balance = balance.Add(ReconstructBalance(account, transactions))
		}
		current = balance.Sub(goal.BaselineAmount).Add(manualAmount)
		if current.IsNegative() {
			current = decimal.Zero
		}

	case entity.GoalTypeSpendingLimit:
		// Money out of linked accounts since the start of the current period.
		start := PeriodStart(goal.Period, now)
		spent := decimal.Zero
		for _, tx := range transactions {
			if tx.Pending || !linked[tx.AccountID] {
				continue
			}
			if !tx.Amount.IsPositive() || tx.Date.Before(start) {
				continue
			}
			spent = spent.Add(tx.Amount)
		}
		current = spent.Add(manualAmount)

	case entity.GoalTypeDebtPaydown:
		// Paying debt down below the baseline level increases progress.
		totalDebt := decimal.Zero
		for _, account := range accounts {
			if !linked[account.ID] || !account.IsLiability() {
				continue
			}
			totalDebt = totalDebt.Add(ReconstructBalance(account, transactions).Abs())
		}
		current = goal.BaselineAmount.Sub(totalDebt).Add(manualAmount)
		if current.IsNegative() {
			current = decimal.Zero
		}

	case entity.GoalTypeIncomeTarget:
		// Money into linked accounts within the goal's date range.
		income := decimal.Zero
		for _, tx := range transactions {
			if tx.Pending || !linked[tx.AccountID] {
				continue
			}
			if !tx.Amount.IsNegative() || tx.Date.Before(goal.StartDate) {
				continue
			}
			if goal.TargetDate != nil && tx.Date.After(*goal.TargetDate) {
				continue
			}
			income = income.Add(tx.Amount.Abs())
		}
		current = income.Add(manualAmount)

	case entity.GoalTypeAdHoc:
		// Net reconstructed balance of whatever is linked, liabilities as
		// negatives, plus manual entries. No flooring.
		current = manualAmount
		for _, account := range accounts {
			if !linked[account.ID] {
				continue
			}
			current = current.Add(ReconstructBalance(account, transactions))
		}

	default:
		current = decimal.Zero
	}

	current = current.Round(2)
	return Result{
		CurrentAmount: current,
		ProgressPct:   ProgressPercent(current, goal.TargetAmount),
	}
}
