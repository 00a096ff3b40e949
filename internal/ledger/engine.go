package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/PraloyG18/Banking-Application/internal/model"
)

// Engine orchestrates deposits, withdrawals and transfers against an
// AccountStore and a TransactionLog. Each operation validates first, then
// acquires the mutation rights it needs, mutates balances, appends the
// matching records, and releases. The account lock is held across the log
// append so an operation's balance change and its record land as one unit
// from the point of view of any other caller.
type Engine struct {
	accounts *AccountStore
	log      *TransactionLog
}

// NewEngine creates an Engine over a store and a log.
func NewEngine(accounts *AccountStore, log *TransactionLog) *Engine {
	return &Engine{accounts: accounts, log: log}
}

// CreateAccount registers a zero-balance account for a customer.
func (e *Engine) CreateAccount(number, customerID string, accountType model.AccountType) (model.Account, error) {
	acct := model.Account{
		Number:     number,
		CustomerID: customerID,
		Type:       accountType,
		Balance:    decimal.Zero,
	}
	if err := e.accounts.Create(acct); err != nil {
		return model.Account{}, err
	}
	return acct, nil
}

// Deposit credits amount to the account and appends a Deposit record.
func (e *Engine) Deposit(number string, amount decimal.Decimal, note string) (model.Account, error) {
	if err := ValidateAmount(amount); err != nil {
		return model.Account{}, err
	}

	g, err := e.accounts.Acquire(number)
	if err != nil {
		return model.Account{}, err
	}
	defer g.Release()

	acct, err := g.ApplyDelta(number, amount, AllowAny)
	if err != nil {
		return model.Account{}, err
	}

	if _, err := e.log.Append(model.Transaction{
		Type:          model.TransactionDeposit,
		AccountNumber: number,
		Amount:        amount,
		Note:          note,
	}); err != nil {
		// Undo the credit before surfacing the fatal error.
		_, _ = g.ApplyDelta(number, amount.Neg(), nil)
		return model.Account{}, err
	}
	return acct, nil
}

// Withdraw debits amount from the account if funds suffice and appends a
// Withdraw record. On insufficient funds nothing changes.
func (e *Engine) Withdraw(number string, amount decimal.Decimal, note string) (model.Account, error) {
	if err := ValidateAmount(amount); err != nil {
		return model.Account{}, err
	}

	g, err := e.accounts.Acquire(number)
	if err != nil {
		return model.Account{}, err
	}
	defer g.Release()

	acct, err := g.ApplyDelta(number, amount.Neg(), NonNegativeAfter(amount.Neg()))
	if err != nil {
		if errors.Is(err, model.ErrPreconditionFailed) {
			return model.Account{}, fmt.Errorf("%w: account %s", model.ErrInsufficientFunds, number)
		}
		return model.Account{}, err
	}

	if _, err := e.log.Append(model.Transaction{
		Type:          model.TransactionWithdraw,
		AccountNumber: number,
		Amount:        amount,
		Note:          note,
	}); err != nil {
		_, _ = g.ApplyDelta(number, amount, nil)
		return model.Account{}, err
	}
	return acct, nil
}

// Transfer moves amount from one account to another. Both accounts' mutation
// rights are taken before either balance moves (in lexicographic order, so
// opposing transfers on the same pair cannot deadlock), and the two records
// are appended as one atomic batch. If the append fails after the balances
// moved, both moves are undone before the error surfaces.
func (e *Engine) Transfer(from, to string, amount decimal.Decimal, note string) (model.Account, model.Account, error) {
	if err := ValidateAmount(amount); err != nil {
		return model.Account{}, model.Account{}, err
	}
	if err := ValidateDistinctAccounts(from, to); err != nil {
		return model.Account{}, model.Account{}, err
	}

	g, err := e.accounts.Acquire(from, to)
	if err != nil {
		return model.Account{}, model.Account{}, err
	}
	defer g.Release()

	src, err := g.ApplyDelta(from, amount.Neg(), NonNegativeAfter(amount.Neg()))
	if err != nil {
		if errors.Is(err, model.ErrPreconditionFailed) {
			return model.Account{}, model.Account{}, fmt.Errorf("%w: account %s", model.ErrInsufficientFunds, from)
		}
		return model.Account{}, model.Account{}, err
	}

	dst, err := g.ApplyDelta(to, amount, AllowAny)
	if err != nil {
		_, _ = g.ApplyDelta(from, amount, nil)
		return model.Account{}, model.Account{}, err
	}

	outNote := note
	if outNote == "" {
		outNote = "transfer to " + to
	}
	if _, err := e.log.Append(
		model.Transaction{Type: model.TransactionTransferOut, AccountNumber: from, Amount: amount, Note: outNote},
		model.Transaction{Type: model.TransactionTransferIn, AccountNumber: to, Amount: amount, Note: "transfer from " + from},
	); err != nil {
		_, _ = g.ApplyDelta(from, amount, nil)
		_, _ = g.ApplyDelta(to, amount.Neg(), nil)
		return model.Account{}, model.Account{}, err
	}
	return src, dst, nil
}

// GetStatement returns the account's transaction history ordered by
// timestamp ascending.
func (e *Engine) GetStatement(number string) ([]model.Transaction, error) {
	if _, err := e.accounts.Get(number); err != nil {
		return nil, err
	}
	return e.log.FindByAccount(number), nil
}

// ListAccounts returns all accounts ordered by account number ascending.
func (e *Engine) ListAccounts() []model.Account {
	return e.accounts.List()
}
