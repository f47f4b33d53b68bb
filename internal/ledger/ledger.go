// Package ledger holds every account and is the only mutation surface over
// them. Each operation either fully succeeds, appending exactly one
// transaction per balance change, or fails leaving all state untouched.
package ledger

import (
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/id"
	"github.com/teller-dev/teller/internal/model"
)

// DefaultWithdrawalLimit is the savings withdrawal allowance per cycle when
// the caller does not supply one.
const DefaultWithdrawalLimit = 3

// account is the private mutable state behind one account number. It is
// never handed out; callers see AccountSummary and Transaction values only.
type account struct {
	number    string
	kind      model.AccountKind
	ownerName string
	balance   decimal.Decimal
	createdAt time.Time
	log       []model.Transaction

	// Savings only.
	interestRate    decimal.Decimal
	withdrawalLimit int
	withdrawals     int // successful withdrawals this cycle
}

// Ledger is the in-memory collection of all accounts. A single mutex
// serializes every operation, so cross-account work (transfers) is atomic.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*account
	order    []string // account numbers in creation order
	now      func() time.Time
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[string]*account),
		now:      time.Now,
	}
}

// CreateParams holds parameters for opening an account. WithdrawalLimit and
// InterestRate apply to savings accounts only; a zero WithdrawalLimit takes
// DefaultWithdrawalLimit.
type CreateParams struct {
	Kind            model.AccountKind
	OwnerName       string
	InitialDeposit  decimal.Decimal
	WithdrawalLimit int
	InterestRate    decimal.Decimal
}

// Create opens an account and returns its number. An initial deposit above
// zero is recorded as the account's opening transaction.
func (l *Ledger) Create(params CreateParams) (string, error) {
	if !params.Kind.Valid() {
		return "", fmt.Errorf("account kind %q: %w", params.Kind, ErrUnknownKind)
	}
	if params.InitialDeposit.IsNegative() {
		return "", fmt.Errorf("initial deposit %s: %w", params.InitialDeposit, ErrInvalidAmount)
	}

	limit := params.WithdrawalLimit
	if params.Kind == model.KindSavings {
		if limit == 0 {
			limit = DefaultWithdrawalLimit
		}
		if limit < 0 {
			return "", fmt.Errorf("withdrawal limit %d: %w", params.WithdrawalLimit, ErrInvalidAmount)
		}
		if params.InterestRate.IsNegative() {
			return "", fmt.Errorf("interest rate %s: %w", params.InterestRate, ErrInvalidAmount)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	number := id.NewAccountNumber()
	for l.accounts[number] != nil {
		number = id.NewAccountNumber()
	}

	a := &account{
		number:          number,
		kind:            params.Kind,
		ownerName:       params.OwnerName,
		balance:         params.InitialDeposit,
		createdAt:       l.now(),
		interestRate:    params.InterestRate,
		withdrawalLimit: limit,
	}
	if params.InitialDeposit.IsPositive() {
		l.record(a, model.TxDeposit, params.InitialDeposit, "", "opening deposit")
	}

	l.accounts[number] = a
	l.order = append(l.order, number)
	return number, nil
}

// Deposit adds amount to the account and returns the new balance.
func (l *Ledger) Deposit(number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.lookup(number)
	if err != nil {
		return decimal.Decimal{}, err
	}

	a.balance = a.balance.Add(amount)
	l.record(a, model.TxDeposit, amount, "", "")
	return a.balance, nil
}

// Withdraw removes amount from the account and returns the new balance.
// Savings accounts consume one unit of their cycle allowance per success.
func (l *Ledger) Withdraw(number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("withdrawal of %s: %w", amount, ErrInvalidAmount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.lookup(number)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := l.debit(a, amount); err != nil {
		return decimal.Decimal{}, err
	}

	l.record(a, model.TxWithdrawal, amount, "", "")
	return a.balance, nil
}

// TransferResult reports the post-transfer balances of both accounts.
type TransferResult struct {
	SourceBalance decimal.Decimal
	DestBalance   decimal.Decimal
}

// Transfer atomically moves amount between two accounts, recording a
// transfer_out on the source and a transfer_in on the destination. The
// source is subject to the same policy as Withdraw, including the savings
// cycle allowance. On any failure neither account changes.
func (l *Ledger) Transfer(sourceNumber, destNumber string, amount decimal.Decimal) (TransferResult, error) {
	if !amount.IsPositive() {
		return TransferResult{}, fmt.Errorf("transfer of %s: %w", amount, ErrInvalidAmount)
	}
	if sourceNumber == destNumber {
		return TransferResult{}, fmt.Errorf("account %s: %w", sourceNumber, ErrSameAccountTransfer)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Resolve both legs before touching either account.
	src, err := l.lookup(sourceNumber)
	if err != nil {
		return TransferResult{}, err
	}
	dst, err := l.lookup(destNumber)
	if err != nil {
		return TransferResult{}, err
	}

	if err := l.debit(src, amount); err != nil {
		return TransferResult{}, err
	}
	dst.balance = dst.balance.Add(amount)

	l.record(src, model.TxTransferOut, amount, destNumber, "")
	l.record(dst, model.TxTransferIn, amount, sourceNumber, "")

	return TransferResult{SourceBalance: src.balance, DestBalance: dst.balance}, nil
}

// AccrueInterest applies one cycle of interest to a savings account and
// resets its withdrawal allowance, as a single cycle-boundary event. It
// returns the interest applied and fails with ErrNotApplicable for
// checking accounts.
func (l *Ledger) AccrueInterest(number string) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.lookup(number)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return l.accrue(a)
}

// AccrueAllInterest runs a cycle boundary over every savings account and
// returns the total interest applied. Checking accounts are untouched.
func (l *Ledger) AccrueAllInterest() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := decimal.Decimal{}
	for _, number := range l.order {
		a := l.accounts[number]
		if a.kind != model.KindSavings {
			continue
		}
		interest, _ := l.accrue(a)
		total = total.Add(interest)
	}
	return total
}

// Summary returns a snapshot of one account.
func (l *Ledger) Summary(number string) (model.AccountSummary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.lookup(number)
	if err != nil {
		return model.AccountSummary{}, err
	}
	return l.summarize(a), nil
}

// Accounts returns snapshots of every account in creation order.
func (l *Ledger) Accounts() []model.AccountSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.AccountSummary, 0, len(l.order))
	for _, number := range l.order {
		out = append(out, l.summarize(l.accounts[number]))
	}
	return out
}

// History returns the account's transaction log in insertion order as a
// restartable sequence. The sequence is a snapshot: operations performed
// after the call do not appear in it.
func (l *Ledger) History(number string) (iter.Seq[model.Transaction], error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.lookup(number)
	if err != nil {
		return nil, err
	}

	log := make([]model.Transaction, len(a.log))
	copy(log, a.log)
	return func(yield func(model.Transaction) bool) {
		for _, tx := range log {
			if !yield(tx) {
				return
			}
		}
	}, nil
}

// Statistics aggregates counts and balances across all accounts.
func (l *Ledger) Statistics() model.Statistics {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := model.Statistics{TotalAccounts: len(l.accounts)}
	for _, a := range l.accounts {
		stats.TotalBalance = stats.TotalBalance.Add(a.balance)
		switch a.kind {
		case model.KindChecking:
			stats.CheckingAccounts++
			stats.CheckingBalance = stats.CheckingBalance.Add(a.balance)
		case model.KindSavings:
			stats.SavingsAccounts++
			stats.SavingsBalance = stats.SavingsBalance.Add(a.balance)
		}
	}
	return stats
}

// lookup resolves an account number. Callers must hold the mutex.
func (l *Ledger) lookup(number string) (*account, error) {
	a, ok := l.accounts[number]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", number, ErrAccountNotFound)
	}
	return a, nil
}

// debit removes amount from the account, enforcing the savings cycle
// allowance before the funds check. All checks precede any mutation.
// Callers must hold the mutex and record the resulting transaction.
func (l *Ledger) debit(a *account, amount decimal.Decimal) error {
	if a.kind == model.KindSavings && a.withdrawals >= a.withdrawalLimit {
		return fmt.Errorf("account %s used %d of %d withdrawals: %w",
			a.number, a.withdrawals, a.withdrawalLimit, ErrWithdrawalLimitExceeded)
	}
	if a.balance.LessThan(amount) {
		return fmt.Errorf("account %s holds %s, requested %s: %w",
			a.number, a.balance.StringFixed(2), amount.StringFixed(2), ErrInsufficientFunds)
	}

	a.balance = a.balance.Sub(amount)
	if a.kind == model.KindSavings {
		a.withdrawals++
	}
	return nil
}

// accrue applies one cycle of interest and resets the withdrawal counter.
// Zero interest changes no balance and so appends no transaction, but the
// counter still resets: the cycle boundary happened either way.
func (l *Ledger) accrue(a *account) (decimal.Decimal, error) {
	if a.kind != model.KindSavings {
		return decimal.Decimal{}, fmt.Errorf("account %s is %s: %w", a.number, a.kind, ErrNotApplicable)
	}

	interest := a.balance.Mul(a.interestRate)
	if interest.IsPositive() {
		a.balance = a.balance.Add(interest)
		l.record(a, model.TxInterest, interest, "", "cycle interest")
	}
	a.withdrawals = 0
	return interest, nil
}

// record appends one transaction reflecting the account's current balance.
func (l *Ledger) record(a *account, kind model.TransactionKind, amount decimal.Decimal, counterAccount, note string) {
	a.log = append(a.log, model.Transaction{
		ID:               id.NewTransactionID(),
		Kind:             kind,
		Amount:           amount,
		Timestamp:        l.now(),
		ResultingBalance: a.balance,
		CounterAccount:   counterAccount,
		Note:             note,
	})
}

// summarize builds an AccountSummary. Callers must hold the mutex.
func (l *Ledger) summarize(a *account) model.AccountSummary {
	s := model.AccountSummary{
		Number:           a.number,
		Kind:             a.kind,
		OwnerName:        a.ownerName,
		Balance:          a.balance,
		CreatedAt:        a.createdAt,
		TransactionCount: len(a.log),
	}
	if a.kind == model.KindSavings {
		rate := a.interestRate
		limit := a.withdrawalLimit
		remaining := a.withdrawalLimit - a.withdrawals
		s.InterestRate = &rate
		s.WithdrawalLimit = &limit
		s.WithdrawalsRemaining = &remaining
	}
	return s
}
