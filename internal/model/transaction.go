package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies entries in an account's history.
type TransactionKind string

const (
	TxDeposit     TransactionKind = "deposit"
	TxWithdrawal  TransactionKind = "withdrawal"
	TxTransferIn  TransactionKind = "transfer_in"
	TxTransferOut TransactionKind = "transfer_out"
	TxInterest    TransactionKind = "interest"
)

// Transaction is one entry in an account's history. Immutable once appended.
type Transaction struct {
	ID               string
	Kind             TransactionKind
	Amount           decimal.Decimal
	Timestamp        time.Time
	ResultingBalance decimal.Decimal
	CounterAccount   string // other account of a transfer, empty otherwise
	Note             string
}
