// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the type of a linked financial account.
type AccountType string

const (
	AccountTypeDepository AccountType = "depository"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeOther      AccountType = "other"
)

// Account represents one financial account connected through the external
// aggregator. Accounts are read-only for the goal engine.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           AccountType
	Subtype        string
	InitialBalance decimal.Decimal // Baseline balance captured at connection time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLiability reports whether the account balance represents money owed
// rather than money held. Liability balances are always reported as a
// non-positive magnitude.
func (a *Account) IsLiability() bool {
	return a.Type == AccountTypeCredit || a.Type == AccountTypeLoan
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name string, accountType AccountType, subtype string, initialBalance decimal.Decimal) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Type:           accountType,
		Subtype:        subtype,
		InitialBalance: initialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
