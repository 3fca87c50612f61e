package account

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/accountbook/internal/model"
)

var (
	// OverdraftFee is charged by a line of credit each time a withdrawal
	// breaches its credit limit.
	OverdraftFee = decimal.NewFromInt(20)

	// MonthlyInterestRate applies to a negative line-of-credit balance at month end.
	MonthlyInterestRate = decimal.RequireFromString("0.07")
)

// Policy holds the behavior that differs between account variants.
type Policy interface {
	// CheckWithdrawalLimit is consulted before a withdrawal is recorded.
	// An error blocks the withdrawal; a non-nil transaction is appended after it.
	CheckWithdrawalLimit(a *Account, overdrawn bool) (*model.Transaction, error)
	// MonthEnd applies periodic adjustments.
	MonthEnd(a *Account) error
}

// StandardPolicy refuses any withdrawal that would breach the minimum balance
// and does nothing at month end.
type StandardPolicy struct{}

// CheckWithdrawalLimit implements Policy.
func (StandardPolicy) CheckWithdrawalLimit(_ *Account, overdrawn bool) (*model.Transaction, error) {
	if overdrawn {
		return nil, ErrInsufficientFunds
	}
	return nil, nil
}

// MonthEnd implements Policy.
func (StandardPolicy) MonthEnd(*Account) error { return nil }

// LineOfCreditPolicy allows overdrafts for a fee and charges interest on a
// negative balance at month end.
type LineOfCreditPolicy struct{}

// CheckWithdrawalLimit implements Policy.
func (LineOfCreditPolicy) CheckWithdrawalLimit(a *Account, overdrawn bool) (*model.Transaction, error) {
	if !overdrawn {
		return nil, nil
	}
	return &model.Transaction{
		Amount: OverdraftFee.Neg(),
		Date:   a.Now(),
		Note:   "apply overdraft fee",
	}, nil
}

// MonthEnd implements Policy. The interest goes through Withdraw, so it can
// itself trigger an overdraft fee.
func (LineOfCreditPolicy) MonthEnd(a *Account) error {
	balance := a.Balance()
	if !balance.IsNegative() {
		return nil
	}
	interest := balance.Neg().Mul(MonthlyInterestRate)
	return a.Withdraw(interest, a.Now(), "charge monthly interest")
}
