package id

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
)

// DefaultSeed is the first account number handed out by a fresh Sequence.
const DefaultSeed int64 = 1234567890

// Sequence hands out unique, strictly increasing account numbers.
// It is safe for concurrent use.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a Sequence whose first number is seed.
func NewSequence(seed int64) *Sequence {
	s := &Sequence{}
	s.next.Store(seed)
	return s
}

// Next returns the current number and advances the counter.
func (s *Sequence) Next() string {
	return FormatNumber(s.next.Add(1) - 1)
}

// FormatNumber returns an account number like "1234567890".
func FormatNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}

// ParseNumber parses "1234567890" back into its integer form.
func ParseNumber(number string) (int64, error) {
	if number == "" {
		return 0, errors.New("invalid account number: empty")
	}
	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account number %q: %w", number, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid account number %q: negative", number)
	}
	return n, nil
}
