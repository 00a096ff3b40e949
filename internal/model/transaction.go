package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies transaction records.
type TransactionType string

const (
	TransactionDeposit     TransactionType = "deposit"
	TransactionWithdraw    TransactionType = "withdraw"
	TransactionTransferOut TransactionType = "transfer-out"
	TransactionTransferIn  TransactionType = "transfer-in"
)

// Transaction is one immutable entry in the append-only log. ID and
// Timestamp are assigned by the log at append time.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
	Note          string          `json:"note,omitempty"`
}
