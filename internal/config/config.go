package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/accountbook/internal/id"
	"github.com/cleared-dev/accountbook/internal/model"
)

// DateFormat is the layout of every date in a scenario file.
const DateFormat = "2006-01-02"

// Operation types understood by scenario playback.
const (
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpMonthEnd = "month_end"
	OpRename   = "rename"
)

// Config represents a top-level accountbook.yaml scenario.
type Config struct {
	Numbering  NumberingConfig `yaml:"numbering"`
	Accounts   []AccountConfig `yaml:"accounts"`
	Operations []Operation     `yaml:"operations,omitempty"`
}

// NumberingConfig seeds the account number sequence.
type NumberingConfig struct {
	Seed *int64 `yaml:"seed,omitempty"` // nil = id.DefaultSeed; 0 is a valid seed
}

// Start returns the first account number to hand out.
func (n NumberingConfig) Start() int64 {
	if n.Seed == nil {
		return id.DefaultSeed
	}
	return *n.Seed
}

// Validate rejects seeds that would produce negative account numbers.
func (n NumberingConfig) Validate() error {
	if n.Start() < 0 {
		return fmt.Errorf("numbering seed must not be negative, got %d", n.Start())
	}
	return nil
}

// AccountConfig describes an account to open. Label is how operations refer to it.
type AccountConfig struct {
	Label          string            `yaml:"label"`
	Kind           model.AccountKind `yaml:"kind"`
	Owner          string            `yaml:"owner"`
	InitialBalance string            `yaml:"initial_balance,omitempty"`
	MinimumBalance string            `yaml:"minimum_balance,omitempty"` // standard only
	CreditLimit    string            `yaml:"credit_limit,omitempty"`    // line-of-credit only
	MonthlyDeposit string            `yaml:"monthly_deposit,omitempty"` // gift-card only
}

// Operation is one step of scenario playback.
type Operation struct {
	Account     string `yaml:"account"` // label or account number
	Type        string `yaml:"type"`
	Amount      string `yaml:"amount,omitempty"`
	Date        string `yaml:"date,omitempty"` // "YYYY-MM-DD"; empty = now
	Note        string `yaml:"note,omitempty"`
	Owner       string `yaml:"owner,omitempty"`        // rename only
	ExpectError string `yaml:"expect_error,omitempty"` // "invalid_argument" or "insufficient_funds"
}

// Load reads an accountbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Numbering.Validate(); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ParseAmount parses a decimal amount. An empty string is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// ParseDate parses a scenario date. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// Default returns the walkthrough scenario: one account of each kind, a few
// purchases, an overdraft and a month end.
func Default() *Config {
	seed := id.DefaultSeed
	return &Config{
		Numbering: NumberingConfig{Seed: &seed},
		Accounts: []AccountConfig{
			{Label: "checking", Kind: model.AccountKindStandard, Owner: "Sam", InitialBalance: "1000"},
			{Label: "gift", Kind: model.AccountKindGiftCard, Owner: "Sam", InitialBalance: "100", MonthlyDeposit: "50"},
			{Label: "credit", Kind: model.AccountKindLineOfCredit, Owner: "Sam", CreditLimit: "2000"},
		},
		Operations: []Operation{
			{Account: "checking", Type: OpWithdraw, Amount: "500", Date: "2025-01-05", Note: "Rent payment"},
			{Account: "checking", Type: OpDeposit, Amount: "100", Date: "2025-01-06", Note: "Friend paid me back"},
			{Account: "checking", Type: OpWithdraw, Amount: "750", Date: "2025-01-07", Note: "Attempt to overdraw", ExpectError: "insufficient_funds"},
			{Account: "checking", Type: OpDeposit, Amount: "-300", Date: "2025-01-07", Note: "Negative deposit", ExpectError: "invalid_argument"},
			{Account: "gift", Type: OpWithdraw, Amount: "20", Date: "2025-01-08", Note: "get expensive coffee"},
			{Account: "gift", Type: OpWithdraw, Amount: "50", Date: "2025-01-09", Note: "buy groceries"},
			{Account: "gift", Type: OpMonthEnd},
			{Account: "gift", Type: OpDeposit, Amount: "27.50", Date: "2025-01-10", Note: "add some additional spending money"},
			{Account: "credit", Type: OpWithdraw, Amount: "1000", Date: "2025-01-10", Note: "Take out monthly advance"},
			{Account: "credit", Type: OpDeposit, Amount: "50", Date: "2025-01-11", Note: "Pay back small amount"},
			{Account: "credit", Type: OpWithdraw, Amount: "5000", Date: "2025-01-12", Note: "Emergency funds for repairs"},
			{Account: "credit", Type: OpDeposit, Amount: "150", Date: "2025-01-13", Note: "Partial restoration on repairs"},
			{Account: "credit", Type: OpMonthEnd},
		},
	}
}
