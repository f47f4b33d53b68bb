package ledger

import "errors"

// Domain errors. All are recoverable: a failed operation leaves the
// ledger unchanged, and the caller decides how to present the failure.
var (
	// ErrInvalidAmount covers non-positive amounts and negative
	// initial deposits, limits, or rates.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrAccountNotFound means the account number is unknown to the ledger.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds means the withdrawal would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalLimitExceeded means the savings account has used up its
	// withdrawal allowance for the current cycle.
	ErrWithdrawalLimitExceeded = errors.New("withdrawal limit reached for this cycle")

	// ErrSameAccountTransfer means source and destination are the same account.
	ErrSameAccountTransfer = errors.New("source and destination are the same account")

	// ErrNotApplicable means the operation does not exist for the account's
	// kind, such as interest accrual on a checking account.
	ErrNotApplicable = errors.New("operation does not apply to this account kind")

	// ErrUnknownKind means the requested account kind is not recognized.
	ErrUnknownKind = errors.New("unknown account kind")
)
