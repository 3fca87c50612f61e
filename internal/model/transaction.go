package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single signed movement on an account.
// Accounts store transactions by value; once recorded they are never changed.
type Transaction struct {
	Amount decimal.Decimal // negative = withdrawal or charge, positive = deposit
	Date   time.Time
	Note   string
}
