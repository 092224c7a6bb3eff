// Package progress implements the goal-progress computation engine.
package progress

import (
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// ReconstructBalance derives the account's point-in-time balance from its
// stored baseline and the ledger transactions.
//
// A positive transaction amount is money leaving the account, so the raw
// balance is the initial balance minus the sum of posted amounts. Liability
// accounts always report a non-positive magnitude (the amount owed, negated).
func ReconstructBalance(account *entity.Account, transactions []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Pending || tx.AccountID != account.ID {
			continue
		}
		total = total.Add(tx.Amount)
	}

	raw := account.InitialBalance.Sub(total)
	if account.IsLiability() {
		return raw.Abs().Neg()
	}
	return raw
}
