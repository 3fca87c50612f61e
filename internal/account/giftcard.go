package account

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/accountbook/internal/id"
	"github.com/cleared-dev/accountbook/internal/model"
)

// GiftCardAccount is a standard-rules account that also carries a monthly
// deposit figure. No operation applies the monthly deposit yet.
type GiftCardAccount struct {
	*Account
	monthlyDeposit decimal.Decimal
}

// NewGiftCard opens a gift-card account.
func NewGiftCard(seq *id.Sequence, owner string, initial, monthlyDeposit decimal.Decimal, opts ...Option) *GiftCardAccount {
	return &GiftCardAccount{
		Account:        newAccount(seq, model.AccountKindGiftCard, StandardPolicy{}, owner, initial, opts...),
		monthlyDeposit: monthlyDeposit,
	}
}

// MonthlyDeposit returns the stored monthly deposit figure.
func (g *GiftCardAccount) MonthlyDeposit() decimal.Decimal {
	return g.monthlyDeposit
}
