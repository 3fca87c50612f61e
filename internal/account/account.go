// Package account implements bank accounts that record immutable transactions
// and derive their balance from them.
package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/accountbook/internal/id"
	"github.com/cleared-dev/accountbook/internal/model"
)

// Account is an append-only transaction log with a derived balance.
// Variant behavior lives in its Policy.
type Account struct {
	number       string
	owner        string
	kind         model.AccountKind
	minimum      decimal.Decimal
	policy       Policy
	now          func() time.Time
	transactions []model.Transaction
}

// Option customizes account construction.
type Option func(*Account)

// WithMinimumBalance sets the lowest balance a withdrawal may leave behind.
func WithMinimumBalance(minimum decimal.Decimal) Option {
	return func(a *Account) { a.minimum = minimum }
}

// WithClock replaces time.Now for transactions the account dates itself
// (initial balance, fees, interest).
func WithClock(now func() time.Time) Option {
	return func(a *Account) { a.now = now }
}

func newAccount(seq *id.Sequence, kind model.AccountKind, policy Policy, owner string, initial decimal.Decimal, opts ...Option) *Account {
	a := &Account{
		number: seq.Next(),
		owner:  owner,
		kind:   kind,
		policy: policy,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	// Credit accounts may open at zero, so only a positive amount is recorded.
	if initial.IsPositive() {
		a.transactions = append(a.transactions, model.Transaction{
			Amount: initial,
			Date:   a.now(),
			Note:   "initial balance",
		})
	}
	return a
}

// NewStandard opens a standard account. The minimum balance is zero unless
// WithMinimumBalance is given.
func NewStandard(seq *id.Sequence, owner string, initial decimal.Decimal, opts ...Option) *Account {
	return newAccount(seq, model.AccountKindStandard, StandardPolicy{}, owner, initial, opts...)
}

// NewLineOfCredit opens an account that may go as far as -creditLimit before
// overdraft fees apply.
func NewLineOfCredit(seq *id.Sequence, owner string, initial, creditLimit decimal.Decimal, opts ...Option) *Account {
	opts = append(opts, WithMinimumBalance(creditLimit.Neg()))
	return newAccount(seq, model.AccountKindLineOfCredit, LineOfCreditPolicy{}, owner, initial, opts...)
}

// Number returns the account number assigned at construction.
func (a *Account) Number() string { return a.number }

// Owner returns the current owner name.
func (a *Account) Owner() string { return a.owner }

// SetOwner renames the account holder.
func (a *Account) SetOwner(owner string) { a.owner = owner }

// Kind returns the account variant.
func (a *Account) Kind() model.AccountKind { return a.kind }

// MinimumBalance returns the lowest balance a withdrawal may leave behind.
func (a *Account) MinimumBalance() decimal.Decimal { return a.minimum }

// Now returns the account clock's current time.
func (a *Account) Now() time.Time { return a.now() }

// Balance returns the sum of all transaction amounts.
func (a *Account) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range a.transactions {
		balance = balance.Add(txn.Amount)
	}
	return balance
}

// Transactions returns a copy of the transaction log in recorded order.
func (a *Account) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit records a positive transaction of amount.
func (a *Account) Deposit(amount decimal.Decimal, date time.Time, note string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit amount must be greater than 0, got %s", ErrInvalidArgument, amount)
	}
	a.transactions = append(a.transactions, model.Transaction{Amount: amount, Date: date, Note: note})
	return nil
}

// Withdraw records a negative transaction of amount, followed by any fee the
// account's policy charges. Nothing is recorded if the policy refuses.
func (a *Account) Withdraw(amount decimal.Decimal, date time.Time, note string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal amount must be greater than 0, got %s", ErrInvalidArgument, amount)
	}

	overdrawn := a.Balance().Sub(amount).LessThan(a.minimum)
	fee, err := a.policy.CheckWithdrawalLimit(a, overdrawn)
	if err != nil {
		return fmt.Errorf("withdrawing %s from %s: %w", amount, a.number, err)
	}

	a.transactions = append(a.transactions, model.Transaction{Amount: amount.Neg(), Date: date, Note: note})
	if fee != nil {
		a.transactions = append(a.transactions, *fee)
	}
	return nil
}

// PerformMonthEnd runs the variant's month-end adjustments.
func (a *Account) PerformMonthEnd() error {
	return a.policy.MonthEnd(a)
}
