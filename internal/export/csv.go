package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PraloyG18/Banking-Application/internal/model"
)

// StatementHeader is the CSV header for a statement export.
const StatementHeader = "id,type,account,amount,timestamp,note"

// AccountsHeader is the CSV header for an account listing export.
const AccountsHeader = "number,customer_id,type,balance"

const (
	stmtFields   = 6
	colID        = 0
	colType      = 1
	colAccount   = 2
	colAmount    = 3
	colTimestamp = 4
	colNote      = 5
)

const (
	acctFields    = 4
	colNumber     = 0
	colCustomerID = 1
	colAcctType   = 2
	colBalance    = 3
)

// MarshalTransaction converts a transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, stmtFields)
	row[colID] = t.ID
	row[colType] = string(t.Type)
	row[colAccount] = t.AccountNumber
	row[colAmount] = t.Amount.String()
	row[colTimestamp] = t.Timestamp.Format(time.RFC3339Nano)
	row[colNote] = t.Note
	return row
}

// UnmarshalTransaction converts a CSV row to a transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != stmtFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", stmtFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	ts, err := time.Parse(time.RFC3339Nano, record[colTimestamp])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return model.Transaction{
		ID:            record[colID],
		Type:          model.TransactionType(record[colType]),
		AccountNumber: record[colAccount],
		Amount:        amount,
		Timestamp:     ts,
		Note:          record[colNote],
	}, nil
}

// WriteStatement writes a statement as CSV, header included.
func WriteStatement(w io.Writer, recs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(StatementHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range recs {
		if err := cw.Write(MarshalTransaction(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadStatement reads a statement CSV written by WriteStatement.
func ReadStatement(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = stmtFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var recs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		recs = append(recs, tx)
	}
	return recs, nil
}

// MarshalAccount converts an account to a CSV row.
func MarshalAccount(a model.Account) []string {
	row := make([]string, acctFields)
	row[colNumber] = a.Number
	row[colCustomerID] = a.CustomerID
	row[colAcctType] = string(a.Type)
	row[colBalance] = a.Balance.StringFixed(2)
	return row
}

// WriteAccounts writes an account listing as CSV, header included.
func WriteAccounts(w io.Writer, accts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(AccountsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, acct := range accts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
