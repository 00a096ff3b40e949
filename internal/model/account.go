package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType classifies accounts.
type AccountType string

const (
	AccountTypeSavings AccountType = "savings"
	AccountTypeCurrent AccountType = "current"
)

// ParseAccountType parses a user-supplied account type. Matching is
// case-insensitive; anything other than the two known types is rejected.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(AccountTypeSavings):
		return AccountTypeSavings, nil
	case string(AccountTypeCurrent):
		return AccountTypeCurrent, nil
	}
	return "", &ValidationError{Field: "accountType", Reason: fmt.Sprintf("must be savings or current, got %q", s)}
}

// Account is a single-balance bucket owned by a customer. The balance is
// mutated only through the ledger engine and never goes negative.
type Account struct {
	Number     string          `json:"number"`
	CustomerID string          `json:"customer_id"`
	Type       AccountType     `json:"type"`
	Balance    decimal.Decimal `json:"balance"`
}
