package bank

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/accountbook/internal/account"
	"github.com/cleared-dev/accountbook/internal/config"
	"github.com/cleared-dev/accountbook/internal/id"
)

// Error kinds an operation may declare in expect_error.
const (
	ExpectInvalidArgument   = "invalid_argument"
	ExpectInsufficientFunds = "insufficient_funds"
)

// OperationError describes the scenario step that stopped playback.
type OperationError struct {
	Index   int
	Account string
	Type    string
	Err     error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %d [%s %s]: %v", e.Index, e.Account, e.Type, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// Result is one replayed operation.
type Result struct {
	Index   int
	Account *account.Account
	Op      config.Operation
	Err     error // set only for expected failures
}

// Scenario is a Bank populated from a Config, with accounts addressable by label.
type Scenario struct {
	Bank    *Bank
	Labels  []string
	byLabel map[string]*account.Account
}

// Account returns the account opened under label.
func (s *Scenario) Account(label string) (*account.Account, bool) {
	a, ok := s.byLabel[label]
	return a, ok
}

// resolve finds the account an operation refers to, by label first and then
// by account number.
func (s *Scenario) resolve(ref string) (*account.Account, bool) {
	if a, ok := s.byLabel[ref]; ok {
		return a, true
	}
	if _, err := id.ParseNumber(ref); err != nil {
		return nil, false
	}
	return s.Bank.Get(ref)
}

// Setup opens every account in cfg on a new Bank.
func Setup(cfg *config.Config, opts ...account.Option) (*Scenario, error) {
	if err := cfg.Numbering.Validate(); err != nil {
		return nil, err
	}
	s := &Scenario{
		Bank:    New(cfg.Numbering.Start(), opts...),
		byLabel: make(map[string]*account.Account),
	}

	for i, ac := range cfg.Accounts {
		if ac.Label == "" {
			return nil, fmt.Errorf("account %d: missing label", i+1)
		}
		if _, dup := s.byLabel[ac.Label]; dup {
			return nil, fmt.Errorf("account %d: duplicate label %q", i+1, ac.Label)
		}

		params, err := openParams(ac)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", ac.Label, err)
		}
		acct, err := s.Bank.Open(params)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", ac.Label, err)
		}
		s.byLabel[ac.Label] = acct
		s.Labels = append(s.Labels, ac.Label)
	}
	return s, nil
}

func openParams(ac config.AccountConfig) (OpenParams, error) {
	params := OpenParams{Kind: ac.Kind, Owner: ac.Owner}
	var err error
	if params.InitialBalance, err = config.ParseAmount(ac.InitialBalance); err != nil {
		return OpenParams{}, fmt.Errorf("initial_balance: %w", err)
	}
	if params.MinimumBalance, err = config.ParseAmount(ac.MinimumBalance); err != nil {
		return OpenParams{}, fmt.Errorf("minimum_balance: %w", err)
	}
	if params.CreditLimit, err = config.ParseAmount(ac.CreditLimit); err != nil {
		return OpenParams{}, fmt.Errorf("credit_limit: %w", err)
	}
	if params.MonthlyDeposit, err = config.ParseAmount(ac.MonthlyDeposit); err != nil {
		return OpenParams{}, fmt.Errorf("monthly_deposit: %w", err)
	}
	return params, nil
}

// Apply replays cfg's operations in order. It stops at the first failure that
// the operation did not declare in expect_error, returning an *OperationError.
// An operation that declares an error but succeeds is also a failure.
func (s *Scenario) Apply(cfg *config.Config) ([]Result, error) {
	var results []Result
	for i, op := range cfg.Operations {
		index := i + 1
		acct, ok := s.resolve(op.Account)
		if !ok {
			return results, &OperationError{Index: index, Account: op.Account, Type: op.Type, Err: errors.New("unknown account label or number")}
		}

		err := s.applyOne(acct, op)
		if op.ExpectError != "" {
			if err == nil {
				return results, &OperationError{Index: index, Account: op.Account, Type: op.Type, Err: fmt.Errorf("expected %s, got success", op.ExpectError)}
			}
			if !matchesExpectation(err, op.ExpectError) {
				return results, &OperationError{Index: index, Account: op.Account, Type: op.Type, Err: err}
			}
		} else if err != nil {
			return results, &OperationError{Index: index, Account: op.Account, Type: op.Type, Err: err}
		}

		results = append(results, Result{Index: index, Account: acct, Op: op, Err: err})
	}
	return results, nil
}

func (s *Scenario) applyOne(acct *account.Account, op config.Operation) error {
	switch op.Type {
	case config.OpMonthEnd:
		return acct.PerformMonthEnd()
	case config.OpRename:
		if op.Owner == "" {
			return errors.New("rename requires owner")
		}
		acct.SetOwner(op.Owner)
		return nil
	case config.OpDeposit, config.OpWithdraw:
	default:
		return fmt.Errorf("unknown operation type %q", op.Type)
	}

	amount, err := config.ParseAmount(op.Amount)
	if err != nil {
		return err
	}
	date, err := config.ParseDate(op.Date)
	if err != nil {
		return err
	}
	if date.IsZero() {
		date = acct.Now()
	}

	if op.Type == config.OpDeposit {
		return acct.Deposit(amount, date, op.Note)
	}
	return acct.Withdraw(amount, date, op.Note)
}

func matchesExpectation(err error, expect string) bool {
	switch expect {
	case ExpectInvalidArgument:
		return errors.Is(err, account.ErrInvalidArgument)
	case ExpectInsufficientFunds:
		return errors.Is(err, account.ErrInsufficientFunds)
	}
	return false
}

// Run sets up and replays cfg in one step.
func Run(cfg *config.Config, opts ...account.Option) (*Scenario, []Result, error) {
	s, err := Setup(cfg, opts...)
	if err != nil {
		return nil, nil, err
	}
	results, err := s.Apply(cfg)
	return s, results, err
}
