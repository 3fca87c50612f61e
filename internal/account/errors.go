package account

import "errors"

var (
	// ErrInvalidArgument is returned when a deposit or withdrawal amount is not positive.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientFunds is returned when a withdrawal would take the balance
	// below the account's minimum and the account does not allow overdrafts.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
