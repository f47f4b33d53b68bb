package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind classifies the accounts the ledger can hold.
type AccountKind string

const (
	KindChecking AccountKind = "checking"
	KindSavings  AccountKind = "savings"
)

// Valid reports whether k is a recognized account kind.
func (k AccountKind) Valid() bool {
	return k == KindChecking || k == KindSavings
}

// AccountSummary is a read-only snapshot of one account. The savings-only
// fields are nil for checking accounts.
type AccountSummary struct {
	Number           string
	Kind             AccountKind
	OwnerName        string
	Balance          decimal.Decimal
	CreatedAt        time.Time
	TransactionCount int

	// Savings only.
	InterestRate         *decimal.Decimal
	WithdrawalLimit      *int
	WithdrawalsRemaining *int
}

// Statistics aggregates counts and balances across the whole ledger.
type Statistics struct {
	TotalAccounts    int
	CheckingAccounts int
	SavingsAccounts  int
	TotalBalance     decimal.Decimal
	CheckingBalance  decimal.Decimal
	SavingsBalance   decimal.Decimal
}
