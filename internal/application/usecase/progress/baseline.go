// Package progress implements the goal-progress computation engine.
package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/domain/entity"
)

// BaselineCalculator snapshots the starting point a goal measures progress
// against. It runs exactly once, at goal-creation time.
type BaselineCalculator struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewBaselineCalculator creates a new BaselineCalculator instance.
func NewBaselineCalculator(accountRepo adapter.AccountRepository, transactionRepo adapter.TransactionRepository) *BaselineCalculator {
	return &BaselineCalculator{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Calculate returns the baseline amount for the goal type and linked
// accounts: the summed reconstructed balance of non-liability accounts for
// savings, the summed absolute liability balance for debt paydown, and 0 for
// every other type (no baseline concept) or when nothing is linked.
func (c *BaselineCalculator) Calculate(
	ctx context.Context,
	userID uuid.UUID,
	goalType entity.GoalType,
	linkedAccountIDs []uuid.UUID,
) (decimal.Decimal, error) {
	if len(linkedAccountIDs) == 0 {
		return decimal.Zero, nil
	}
	if goalType != entity.GoalTypeSavings && goalType != entity.GoalTypeDebtPaydown {
		return decimal.Zero, nil
	}

	accounts, err := c.accountRepo.FindByIDs(ctx, userID, linkedAccountIDs)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load linked accounts: %w", err)
	}

	transactions, err := c.transactionRepo.FindPostedByAccountIDs(ctx, userID, linkedAccountIDs)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load transactions: %w", err)
	}

	total := decimal.Zero
	for _, account := range accounts {
		switch goalType {
		case entity.GoalTypeSavings:
			if !account.IsLiability() {
				total = total.Add(ReconstructBalance(account, transactions))
			}
		case entity.GoalTypeDebtPaydown:
			if account.IsLiability() {
				total = total.Add(ReconstructBalance(account, transactions).Abs())
			}
		}
	}

	return total.Round(2), nil
}
