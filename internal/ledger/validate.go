package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/PraloyG18/Banking-Application/internal/model"
)

// ValidateAmount requires a strictly positive amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return &model.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return nil
}

// ValidateDistinctAccounts rejects self-transfers. A same-account transfer
// would be balance-neutral but leaves ambiguous audit records.
func ValidateDistinctAccounts(from, to string) error {
	if from == to {
		return &model.ValidationError{Field: "toAccount", Reason: "cannot transfer to the same account"}
	}
	return nil
}
