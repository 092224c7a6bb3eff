// Package progress implements the goal-progress computation engine.
package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/domain/entity"
)

func testAccount(accountType entity.AccountType, initialBalance string) *entity.Account {
	return &entity.Account{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Name:           "test account",
		Type:           accountType,
		InitialBalance: decimal.RequireFromString(initialBalance),
	}
}

func testTransaction(accountID uuid.UUID, amount string, date time.Time, pending bool) *entity.Transaction {
	return &entity.Transaction{
		ID:        uuid.New(),
		AccountID: accountID,
		Amount:    decimal.RequireFromString(amount),
		Date:      date,
		Pending:   pending,
	}
}

func TestReconstructBalance(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("no transactions returns initial balance unchanged", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "1500")

		got := ReconstructBalance(account, nil)

		if !got.Equal(decimal.RequireFromString("1500")) {
			t.Errorf("expected 1500, got %s", got)
		}
	})

	t.Run("positive amounts reduce the balance", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "1000")
		transactions := []*entity.Transaction{
			testTransaction(account.ID, "250", day, false),
			testTransaction(account.ID, "50", day, false),
		}

		got := ReconstructBalance(account, transactions)

		if !got.Equal(decimal.RequireFromString("700")) {
			t.Errorf("expected 700, got %s", got)
		}
	})

	t.Run("negative amounts increase the balance", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "1000")
		transactions := []*entity.Transaction{
			testTransaction(account.ID, "-300", day, false),
		}

		got := ReconstructBalance(account, transactions)

		if !got.Equal(decimal.RequireFromString("1300")) {
			t.Errorf("expected 1300, got %s", got)
		}
	})

	t.Run("other accounts transactions are ignored", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "1000")
		transactions := []*entity.Transaction{
			testTransaction(uuid.New(), "999", day, false),
		}

		got := ReconstructBalance(account, transactions)

		if !got.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected 1000, got %s", got)
		}
	})

	t.Run("pending transactions never count", func(t *testing.T) {
		account := testAccount(entity.AccountTypeDepository, "1000")
		transactions := []*entity.Transaction{
			testTransaction(account.ID, "400", day, true),
		}

		got := ReconstructBalance(account, transactions)

		if !got.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected 1000, got %s", got)
		}
	})

	t.Run("missing initial balance is treated as zero", func(t *testing.T) {
		account := &entity.Account{ID: uuid.New(), Type: entity.AccountTypeDepository}
		transactions := []*entity.Transaction{
			testTransaction(account.ID, "100", day, false),
		}

		got := ReconstructBalance(account, transactions)

		if !got.Equal(decimal.RequireFromString("-100")) {
			t.Errorf("expected -100, got %s", got)
		}
	})

	t.Run("liability accounts always report non-positive", func(t *testing.T) {
		tests := []struct {
			name        string
			accountType entity.AccountType
			initial     string
			txAmount    string
			expected    string
		}{
			{"credit with positive raw balance", entity.AccountTypeCredit, "4000", "0", "-4000"},
			{"credit with negative raw balance", entity.AccountTypeCredit, "-4000", "0", "-4000"},
			{"loan reduced by payments", entity.AccountTypeLoan, "12000", "-2000", "-14000"},
			{"credit zero balance", entity.AccountTypeCredit, "0", "0", "0"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				account := testAccount(tt.accountType, tt.initial)
				transactions := []*entity.Transaction{
					testTransaction(account.ID, tt.txAmount, day, false),
				}

				got := ReconstructBalance(account, transactions)

				if got.IsPositive() {
					t.Errorf("liability balance must be non-positive, got %s", got)
				}
				if !got.Equal(decimal.RequireFromString(tt.expected)) {
					t.Errorf("expected %s, got %s", tt.expected, got)
				}
			})
		}
	})
}
