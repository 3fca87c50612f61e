package account

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HistoryHeader is the first line of a history report.
const HistoryHeader = "Date\tAmount\tBalance\tNote"

const shortDateFormat = "1/2/2006"

// HistoryRow is one transaction together with the balance after it.
type HistoryRow struct {
	Date    time.Time
	Amount  decimal.Decimal
	Balance decimal.Decimal
	Note    string
}

// History replays the transaction log, yielding a row per transaction.
// Each call to the returned sequence starts from the first transaction.
func (a *Account) History() iter.Seq[HistoryRow] {
	return func(yield func(HistoryRow) bool) {
		balance := decimal.Zero
		for _, txn := range a.transactions {
			balance = balance.Add(txn.Amount)
			row := HistoryRow{Date: txn.Date, Amount: txn.Amount, Balance: balance, Note: txn.Note}
			if !yield(row) {
				return
			}
		}
	}
}

// MarshalRow formats a HistoryRow as a tab-separated report line (no newline).
// Amounts are printed unrounded so each balance is the sum of the amounts above it.
func MarshalRow(row HistoryRow) string {
	return strings.Join([]string{
		row.Date.Format(shortDateFormat),
		row.Amount.String(),
		row.Balance.String(),
		row.Note,
	}, "\t")
}

// WriteHistory writes the header and one line per transaction to w.
func WriteHistory(w io.Writer, a *Account) error {
	if _, err := fmt.Fprintln(w, HistoryHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	i := 0
	for row := range a.History() {
		i++
		if _, err := fmt.Fprintln(w, MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return nil
}

// HistoryReport returns the text WriteHistory would write.
func HistoryReport(a *Account) string {
	var sb strings.Builder
	_ = WriteHistory(&sb, a) // strings.Builder never fails
	return sb.String()
}
