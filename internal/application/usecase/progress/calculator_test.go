// Package progress implements the goal-progress computation engine.
package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/domain/entity"
)

var calcNow = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

func testGoal(goalType entity.GoalType, target, baseline string, linkedIDs ...uuid.UUID) *entity.Goal {
	return &entity.Goal{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Name:             "test goal",
		Type:             goalType,
		TargetAmount:     decimal.RequireFromString(target),
		BaselineAmount:   decimal.RequireFromString(baseline),
		Period:           entity.GoalPeriodMonthly,
		StartDate:        calcNow.AddDate(0, -2, 0),
		Status:           entity.GoalStatusActive,
		LinkedAccountIDs: linkedIDs,
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		target   string
		expected float64
	}{
		{"half way", "500", "1000", 50},
		{"rounded to two places", "1", "3", 33.33},
		{"capped at 999", "50000", "10", 999},
		{"zero target yields zero", "500", "0", 0},
		{"negative target yields zero", "500", "-10", 0},
		{"negative current clamps to zero", "-50", "100", 0},
		{"exactly full", "1000", "1000", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPercent(decimal.RequireFromString(tt.current), decimal.RequireFromString(tt.target))
			if got != tt.expected {
				t.Errorf("expected %.2f, got %.2f", tt.expected, got)
			}
		})
	}
}

func TestCalculateSavings(t *testing.T) {
	t.Run("balance above baseline drives progress", func(t *testing.T) {
		// A savings goal with baseline 1000, one linked depository account at
		// 1500 and target 1000 sits at exactly 50%.
		account := testAccount(entity.AccountTypeDepository, "1500")
		goal := testGoal(entity.GoalTypeSavings, "1000", "1000", account.ID)

		got := Calculate(goal, []*entity.Account{account}, nil, decimal.Zero, calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("500")) {
			t.Errorf("expected current 500, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 50 {
			t.Errorf("expected 50%%, got %.2f", got.ProgressPct)
		}
	})

	t.Run("liability accounts are excluded", func(t *testing.T) {
		depository := testAccount(entity.AccountTypeDepository, "1200")
		credit := testAccount(entity.AccountTypeCredit, "800")
		goal := testGoal(entity.GoalTypeSavings, "1000", "1000", depository.ID, credit.ID)

		got := Calculate(goal, []*entity.Account{depository, credit}, nil, decimal.Zero, calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("200")) {
			t.Errorf("expected current 200, got %s", got.CurrentAmount)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "400")
		goal := testGoal(entity.GoalTypeSavings, "1000", "1000", account.ID)

		got := Calculate(goal, []*entity.Account{account}, nil, decimal.Zero, calcNow)

		if !got.CurrentAmount.Equal(decimal.Zero) {
			t.Errorf("expected current 0, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 0 {
			t.Errorf("expected 0%%, got %.2f", got.ProgressPct)
		}
	})

	t.Run("manual contribution adds on top", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "1500")
		goal := testGoal(entity.GoalTypeSavings, "1000", "1000", account.ID)

		got := Calculate(goal, []*entity.Account{account}, nil, decimal.RequireFromString("250"), calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("750")) {
			t.Errorf("expected current 750, got %s", got.CurrentAmount)
		}
	})
}

func TestCalculateDebtPaydown(t *testing.T) {
	t.Run("paying down below the baseline counts as progress", func(t *testing.T) {
		// Baseline debt 5000, credit account now at raw 4000: the liability
		// reconstructs to -4000, so 1000 has been paid down.
		credit := testAccount(entity.AccountTypeCredit, "4000")
		goal := testGoal(entity.GoalTypeDebtPaydown, "5000", "5000", credit.ID)

		got := Calculate(goal, []*entity.Account{credit}, nil, decimal.Zero, calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected current 1000, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 20 {
			t.Errorf("expected 20%%, got %.2f", got.ProgressPct)
		}
	})

	t.Run("growing debt floors at zero", func(t *testing.T) {
		credit := testAccount(entity.AccountTypeCredit, "6000")
		goal := testGoal(entity.GoalTypeDebtPaydown, "5000", "5000", credit.ID)

		got := Calculate(goal, []*entity.Account{credit}, nil, decimal.Zero, calcNow)

		if !got.CurrentAmount.Equal(decimal.Zero) {
			t.Errorf("expected current 0, got %s", got.CurrentAmount)
		}
	})

	t.Run("non-liability accounts are excluded", func(t *testing.T) {
		depository := testAccount(entity.AccountTypeDepository, "9999")
		credit := testAccount(entity.AccountTypeCredit, "3000")
		goal := testGoal(entity.GoalTypeDebtPaydown, "5000", "5000", depository.ID, credit.ID)

		got := Calculate(goal, []*entity.Account{depository, credit}, nil, decimal.Zero, calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("2000")) {
			t.Errorf("expected current 2000, got %s", got.CurrentAmount)
		}
	})
}

func TestCalculateSpendingLimit(t *testing.T) {
	t.Run("only current period money-out counts", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "1000")
		goal := testGoal(entity.GoalTypeSpendingLimit, "400", "0", account.ID)
		goal.Period = entity.GoalPeriodMonthly

		inPeriod := calcNow.AddDate(0, 0, -3)
		lastMonth := calcNow.AddDate(0, -1, 0)
		transactions := []*entity.Transaction{
			testTransaction(account.ID, "50", inPeriod, false),
			testTransaction(account.ID, "30", inPeriod, false),
			testTransaction(account.ID, "20", inPeriod, false),
			testTransaction(account.ID, "1000", lastMonth, false),
			testTransaction(account.ID, "-200", inPeriod, false), // income, not spending
			testTransaction(account.ID, "75", inPeriod, true),    // pending
		}

		got := Calculate(goal, []*entity.Account{account}, transactions, decimal.Zero, calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected current 100, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 25 {
			t.Errorf("expected 25%%, got %.2f", got.ProgressPct)
		}
	})

	t.Run("overspending is not floored below the 999 cap", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "1000")
		goal := testGoal(entity.GoalTypeSpendingLimit, "100", "0", account.ID)
		transactions := []*entity.Transaction{
			testTransaction(account.ID, "250", calcNow.AddDate(0, 0, -1), false),
		}

		got := Calculate(goal, []*entity.Account{account}, transactions, decimal.Zero, calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("250")) {
			t.Errorf("expected current 250, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 250 {
			t.Errorf("expected 250%%, got %.2f", got.ProgressPct)
		}
	})
}

func TestCalculateIncomeTarget(t *testing.T) {
	t.Run("money-in within the goal range counts, money-out is excluded", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "0")
		goal := testGoal(entity.GoalTypeIncomeTarget, "4000", "0", account.ID)
		targetDate := calcNow.AddDate(0, 1, 0)
		goal.TargetDate = &targetDate

		transactions := []*entity.Transaction{
			testTransaction(account.ID, "-2000", calcNow.AddDate(0, 0, -5), false),
			testTransaction(account.ID, "500", calcNow.AddDate(0, 0, -5), false),
			testTransaction(account.ID, "-999", goal.StartDate.AddDate(0, 0, -1), false), // before range
			testTransaction(account.ID, "-999", targetDate.AddDate(0, 0, 1), false),      // after range
		}

		got := Calculate(goal, []*entity.Account{account}, transactions, decimal.Zero, calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("2000")) {
			t.Errorf("expected current 2000, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 50 {
			t.Errorf("expected 50%%, got %.2f", got.ProgressPct)
		}
	})
}

func TestCalculateAdHoc(t *testing.T) {
	t.Run("without links only the manual amount counts", func(t *testing.T) {
		goal := testGoal(entity.GoalTypeAdHoc, "300", "0")

		got := Calculate(goal, nil, nil, decimal.RequireFromString("150"), calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected current 150, got %s", got.CurrentAmount)
		}
	})

	t.Run("linked balances include liabilities as negatives", func(t *testing.T) {
		depository := testAccount(entity.AccountTypeDepository, "500")
		credit := testAccount(entity.AccountTypeCredit, "200")
		goal := testGoal(entity.GoalTypeAdHoc, "1000", "0", depository.ID, credit.ID)

		got := Calculate(goal, []*entity.Account{depository, credit}, nil, decimal.RequireFromString("100"), calcNow)

		// 500 - 200 + 100
		if !got.CurrentAmount.Equal(decimal.RequireFromString("400")) {
			t.Errorf("expected current 400, got %s", got.CurrentAmount)
		}
	})
}

func TestCalculateEdgeCases(t *testing.T) {
	t.Run("no linked accounts on a non ad-hoc goal uses manual amount only", func(t *testing.T) {
		goal := testGoal(entity.GoalTypeSavings, "200", "0")

		got := Calculate(goal, nil, nil, decimal.RequireFromString("123.456"), calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("123.46")) {
			t.Errorf("expected current 123.46, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 61.73 {
			t.Errorf("expected 61.73%%, got %.2f", got.ProgressPct)
		}
	})

	t.Run("net-negative manual sum floors at zero without linked accounts", func(t *testing.T) {
		// A correction entry can drive the manual sum below zero; the floor
		// still applies when the goal has no linked accounts.
		goal := testGoal(entity.GoalTypeSavings, "200", "0")

		got := Calculate(goal, nil, nil, decimal.RequireFromString("-50"), calcNow)

		if !got.CurrentAmount.Equal(decimal.Zero) {
			t.Errorf("expected current 0, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 0 {
			t.Errorf("expected 0%%, got %.2f", got.ProgressPct)
		}
	})

	t.Run("net-negative manual sum floors at zero for debt paydown", func(t *testing.T) {
		goal := testGoal(entity.GoalTypeDebtPaydown, "500", "500")

		got := Calculate(goal, nil, nil, decimal.RequireFromString("-120.25"), calcNow)

		if !got.CurrentAmount.Equal(decimal.Zero) {
			t.Errorf("expected current 0, got %s", got.CurrentAmount)
		}
	})

	t.Run("negative manual sum passes through for income targets", func(t *testing.T) {
		// Only savings and debt-paydown floor; other types keep the raw sum.
		goal := testGoal(entity.GoalTypeIncomeTarget, "1000", "0")

		got := Calculate(goal, nil, nil, decimal.RequireFromString("-75"), calcNow)

		if !got.CurrentAmount.Equal(decimal.RequireFromString("-75")) {
			t.Errorf("expected current -75, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 0 {
			t.Errorf("expected 0%%, got %.2f", got.ProgressPct)
		}
	})

	t.Run("unknown goal type falls through to zero", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "1000")
		goal := testGoal(entity.GoalType("mystery"), "200", "0", account.ID)

		got := Calculate(goal, []*entity.Account{account}, nil, decimal.RequireFromString("50"), calcNow)

		if !got.CurrentAmount.Equal(decimal.Zero) {
			t.Errorf("expected current 0, got %s", got.CurrentAmount)
		}
		if got.ProgressPct != 0 {
			t.Errorf("expected 0%%, got %.2f", got.ProgressPct)
		}
	})
}

func TestManualContribution(t *testing.T) {
	goalID := uuid.New()

	activity := func(amount string, date time.Time) *entity.ManualActivity {
		return &entity.ManualActivity{
			ID:           uuid.New(),
			GoalID:       goalID,
			Amount:       decimal.RequireFromString(amount),
			ActivityDate: date,
		}
	}

	t.Run("lifetime sum for non spending-limit goals", func(t *testing.T) {
		goal := testGoal(entity.GoalTypeSavings, "1000", "0")
		goal.ID = goalID

		activities := []*entity.ManualActivity{
			activity("100", calcNow.AddDate(-1, 0, 0)),
			activity("50.005", calcNow),
		}

		got := ManualContribution(goal, activities, calcNow)

		if !got.Equal(decimal.RequireFromString("150.01")) {
			t.Errorf("expected 150.01, got %s", got)
		}
	})

	t.Run("spending-limit goals only count the current period", func(t *testing.T) {
		goal := testGoal(entity.GoalTypeSpendingLimit, "400", "0")
		goal.ID = goalID
		goal.Period = entity.GoalPeriodMonthly

		activities := []*entity.ManualActivity{
			activity("60", calcNow.AddDate(0, 0, -2)),
			activity("999", calcNow.AddDate(0, -1, 0)),
		}

		got := ManualContribution(goal, activities, calcNow)

		if !got.Equal(decimal.RequireFromString("60")) {
			t.Errorf("expected 60, got %s", got)
		}
	})

	t.Run("entries for other goals are ignored", func(t *testing.T) {
		goal := testGoal(entity.GoalTypeSavings, "1000", "0")
		goal.ID = goalID

		other := activity("500", calcNow)
		other.GoalID = uuid.New()

		got := ManualContribution(goal, []*entity.ManualActivity{other}, calcNow)

		if !got.Equal(decimal.Zero) {
			t.Errorf("expected 0, got %s", got)
		}
	})
}
