// Package bank keeps the accounts opened in one process and replays scenarios
// against them.
package bank

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/accountbook/internal/account"
	"github.com/cleared-dev/accountbook/internal/id"
	"github.com/cleared-dev/accountbook/internal/model"
)

// ErrUnknownKind is returned when opening an account of an unrecognized kind.
var ErrUnknownKind = errors.New("unknown account kind")

// Bank provides in-memory lookup over opened accounts.
type Bank struct {
	seq      *id.Sequence
	opts     []account.Option
	accounts []*account.Account
	byNumber map[string]*account.Account
	gifts    map[string]*account.GiftCardAccount
}

// New creates a Bank whose first account number is seed. opts are applied to
// every account it opens.
func New(seed int64, opts ...account.Option) *Bank {
	return &Bank{
		seq:      id.NewSequence(seed),
		opts:     opts,
		byNumber: make(map[string]*account.Account),
		gifts:    make(map[string]*account.GiftCardAccount),
	}
}

// OpenParams holds parameters for opening an account.
type OpenParams struct {
	Kind           model.AccountKind
	Owner          string
	InitialBalance decimal.Decimal
	MinimumBalance decimal.Decimal // standard only
	CreditLimit    decimal.Decimal // line-of-credit only
	MonthlyDeposit decimal.Decimal // gift-card only
}

// Open creates an account of the requested kind and registers it.
func (b *Bank) Open(params OpenParams) (*account.Account, error) {
	var acct *account.Account
	switch params.Kind {
	case model.AccountKindStandard:
		opts := b.opts
		if !params.MinimumBalance.IsZero() {
			opts = append(append([]account.Option{}, b.opts...), account.WithMinimumBalance(params.MinimumBalance))
		}
		acct = account.NewStandard(b.seq, params.Owner, params.InitialBalance, opts...)
	case model.AccountKindGiftCard:
		gift := account.NewGiftCard(b.seq, params.Owner, params.InitialBalance, params.MonthlyDeposit, b.opts...)
		b.gifts[gift.Number()] = gift
		acct = gift.Account
	case model.AccountKindLineOfCredit:
		acct = account.NewLineOfCredit(b.seq, params.Owner, params.InitialBalance, params.CreditLimit, b.opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, params.Kind)
	}

	b.accounts = append(b.accounts, acct)
	b.byNumber[acct.Number()] = acct
	return acct, nil
}

// All returns all accounts in the order they were opened.
func (b *Bank) All() []*account.Account {
	out := make([]*account.Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

// Get returns an account by number.
func (b *Bank) Get(number string) (*account.Account, bool) {
	a, ok := b.byNumber[number]
	return a, ok
}

// GiftCard returns the gift-card view of an account, if it is one.
func (b *Bank) GiftCard(number string) (*account.GiftCardAccount, bool) {
	g, ok := b.gifts[number]
	return g, ok
}

// ByKind returns all accounts of the given kind.
func (b *Bank) ByKind(kind model.AccountKind) []*account.Account {
	var result []*account.Account
	for _, a := range b.accounts {
		if a.Kind() == kind {
			result = append(result, a)
		}
	}
	return result
}

// MonthEnd runs month-end processing on every account in opening order.
// A failure on one account does not stop the others.
func (b *Bank) MonthEnd() error {
	var errs []error
	for _, a := range b.accounts {
		if err := a.PerformMonthEnd(); err != nil {
			errs = append(errs, fmt.Errorf("month end for %s: %w", a.Number(), err))
		}
	}
	return errors.Join(errs...)
}
