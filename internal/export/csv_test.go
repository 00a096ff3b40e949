package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraloyG18/Banking-Application/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestStatementRoundTrip(t *testing.T) {
	recs := []model.Transaction{
		{
			ID:            "t1",
			Type:          model.TransactionDeposit,
			AccountNumber: "AC000001",
			Amount:        dec("100.00"),
			Timestamp:     time.Date(2026, 8, 30, 9, 0, 0, 123456789, time.UTC),
			Note:          "payday",
		},
		{
			ID:            "t2",
			Type:          model.TransactionTransferOut,
			AccountNumber: "AC000001",
			Amount:        dec("35.50"),
			Timestamp:     time.Date(2026, 8, 30, 9, 1, 0, 0, time.UTC),
			Note:          "rent, utilities",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, recs))
	assert.True(t, strings.HasPrefix(buf.String(), "id,"))

	got, err := ReadStatement(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
	assert.True(t, got[0].Amount.Equal(dec("100.00")))
	assert.True(t, got[0].Timestamp.Equal(recs[0].Timestamp))
	assert.Equal(t, "rent, utilities", got[1].Note, "commas in notes survive quoting")
	assert.Equal(t, model.TransactionTransferOut, got[1].Type)
}

func TestReadStatement_Empty(t *testing.T) {
	got, err := ReadStatement(strings.NewReader(StatementHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadStatement_BadRow(t *testing.T) {
	in := StatementHeader + "\nt1,deposit,AC000001,not-a-number,2026-08-30T09:00:00Z,\n"
	_, err := ReadStatement(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestWriteAccounts(t *testing.T) {
	accts := []model.Account{
		{Number: "AC000001", CustomerID: "c1", Type: model.AccountTypeSavings, Balance: dec("20")},
		{Number: "AC000002", CustomerID: "c2", Type: model.AccountTypeCurrent, Balance: dec("50")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accts))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, AccountsHeader, lines[0])
	assert.Equal(t, "AC000001,c1,savings,20.00", lines[1])
	assert.Equal(t, "AC000002,c2,current,50.00", lines[2])
}
