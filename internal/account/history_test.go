package account

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/accountbook/internal/id"
)

func historyAccount(t *testing.T) *Account {
	t.Helper()
	acct := NewLineOfCredit(id.NewSequence(1), "Rae", decimal.Zero, dec("500"), WithClock(fixedClock))
	require.NoError(t, acct.Deposit(dec("100"), date(2025, 1, 2), "paycheck"))
	require.NoError(t, acct.Withdraw(dec("650"), date(2025, 1, 3), "laptop"))
	return acct
}

func TestHistoryRunningBalance(t *testing.T) {
	acct := historyAccount(t)

	var rows []HistoryRow
	for row := range acct.History() {
		rows = append(rows, row)
	}
	require.Len(t, rows, 3)

	assert.True(t, rows[0].Balance.Equal(dec("100")))
	assert.True(t, rows[1].Amount.Equal(dec("-650")))
	assert.True(t, rows[1].Balance.Equal(dec("-550")))
	assert.Equal(t, "apply overdraft fee", rows[2].Note)
	assert.True(t, rows[2].Balance.Equal(dec("-570")))
	assert.True(t, rows[2].Balance.Equal(acct.Balance()))
}

func TestHistoryRestartable(t *testing.T) {
	acct := historyAccount(t)
	seq := acct.History()

	collect := func() []HistoryRow {
		var rows []HistoryRow
		for row := range seq {
			rows = append(rows, row)
		}
		return rows
	}

	first := collect()
	second := collect()
	assert.Equal(t, first, second)
	assert.Len(t, acct.Transactions(), 3, "replay must not mutate the log")
}

func TestHistoryEarlyStop(t *testing.T) {
	acct := historyAccount(t)

	n := 0
	for range acct.History() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestWriteHistory(t *testing.T) {
	acct := historyAccount(t)

	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, acct))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Date\tAmount\tBalance\tNote", lines[0])
	assert.Equal(t, "1/2/2025\t100\t100\tpaycheck", lines[1])
	assert.Equal(t, "1/3/2025\t-650\t-550\tlaptop", lines[2])
	assert.Equal(t, "1/31/2025\t-20\t-570\tapply overdraft fee", lines[3])
}

func TestHistoryReport_Empty(t *testing.T) {
	acct := NewStandard(id.NewSequence(1), "Sam", decimal.Zero)
	assert.Equal(t, HistoryHeader+"\n", HistoryReport(acct))
}

func TestMarshalRow(t *testing.T) {
	row := HistoryRow{
		Date:    date(2025, 12, 9),
		Amount:  dec("-28"),
		Balance: dec("-428"),
		Note:    "charge monthly interest",
	}
	assert.Equal(t, "12/9/2025\t-28\t-428\tcharge monthly interest", MarshalRow(row))
}

func TestWriteHistory_SubCentAmounts(t *testing.T) {
	acct := NewStandard(id.NewSequence(1), "Tess", dec("0.004"), WithClock(fixedClock))
	require.NoError(t, acct.Deposit(dec("0.004"), date(2025, 1, 2), "d"))

	lines := strings.Split(strings.TrimRight(HistoryReport(acct), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1/31/2025\t0.004\t0.004\tinitial balance", lines[1])
	assert.Equal(t, "1/2/2025\t0.004\t0.008\td", lines[2])
}

func TestWriteHistory_InterestKeepsFullPrecision(t *testing.T) {
	acct := NewLineOfCredit(id.NewSequence(1), "Uma", decimal.Zero, dec("10000"), WithClock(fixedClock))
	require.NoError(t, acct.Withdraw(dec("5838.5"), date(2025, 1, 2), "loan"))
	require.NoError(t, acct.PerformMonthEnd())

	var rows []HistoryRow
	for row := range acct.History() {
		rows = append(rows, row)
	}
	require.Len(t, rows, 2)

	assert.Equal(t, "1/31/2025\t-408.695\t-6247.195\tcharge monthly interest", MarshalRow(rows[1]))
	assert.True(t, rows[0].Amount.Add(rows[1].Amount).Equal(rows[1].Balance))
}
