package ledger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/PraloyG18/Banking-Application/internal/model"
)

// Precondition gates a balance delta. It is evaluated against the current
// balance with the account lock held, and the delta applies only if it
// reports true.
type Precondition func(balance decimal.Decimal) bool

// AllowAny is the precondition for credits: they always apply.
func AllowAny(decimal.Decimal) bool { return true }

// NonNegativeAfter requires that the balance stays non-negative once delta
// is applied. It is the guard for withdrawals and transfer debits.
func NonNegativeAfter(delta decimal.Decimal) Precondition {
	return func(balance decimal.Decimal) bool {
		return balance.Add(delta).Sign() >= 0
	}
}

// entry pairs an account with its mutation lock. Holding the lock is the
// exclusive right to mutate or read the account; every path that locks more
// than one entry does so in lexicographic account-number order, so lock
// cycles cannot form.
type entry struct {
	mu   sync.Mutex
	acct model.Account
}

// AccountStore holds account records keyed by account number and hands out
// per-account mutation rights. Accounts are never deleted.
type AccountStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
	byOwner map[string][]string // customer id -> account numbers, creation order
}

// NewAccountStore returns an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		entries: make(map[string]*entry),
		byOwner: make(map[string][]string),
	}
}

// Create registers a new account. A duplicate number means the allocator
// broke its uniqueness guarantee, which is not recoverable.
func (s *AccountStore) Create(acct model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[acct.Number]; exists {
		return &model.FatalError{Op: "create account", Err: fmt.Errorf("account number collision: %s", acct.Number)}
	}
	s.entries[acct.Number] = &entry{acct: acct}
	s.byOwner[acct.CustomerID] = append(s.byOwner[acct.CustomerID], acct.Number)
	return nil
}

// Get returns a snapshot of an account. The account lock is taken for the
// copy, so the snapshot never reflects half of a multi-account operation.
func (s *AccountStore) Get(number string) (model.Account, error) {
	e, err := s.lookup(number)
	if err != nil {
		return model.Account{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acct, nil
}

// ApplyDelta atomically reads the balance, evaluates the precondition, and
// applies balance += delta if it holds. On a failed precondition nothing is
// mutated and ErrPreconditionFailed is returned.
func (s *AccountStore) ApplyDelta(number string, delta decimal.Decimal, pre Precondition) (model.Account, error) {
	g, err := s.Acquire(number)
	if err != nil {
		return model.Account{}, err
	}
	defer g.Release()
	return g.ApplyDelta(number, delta, pre)
}

// List returns all accounts ordered by account number ascending. All account
// locks are held while copying, in lock order, so the listing is a consistent
// cut: it never shows a transfer's debit without its credit.
func (s *AccountStore) List() []model.Account {
	s.mu.RLock()
	numbers := make([]string, 0, len(s.entries))
	for n := range s.entries {
		numbers = append(numbers, n)
	}
	s.mu.RUnlock()

	return s.snapshot(numbers)
}

// ListByCustomer returns the customer's accounts ordered by account number.
func (s *AccountStore) ListByCustomer(customerID string) []model.Account {
	s.mu.RLock()
	numbers := append([]string(nil), s.byOwner[customerID]...)
	s.mu.RUnlock()

	return s.snapshot(numbers)
}

func (s *AccountStore) snapshot(numbers []string) []model.Account {
	if len(numbers) == 0 {
		return nil
	}
	g, err := s.Acquire(numbers...)
	if err != nil {
		// Accounts are never deleted, so a number from the index always
		// resolves.
		return nil
	}
	defer g.Release()

	out := make([]model.Account, 0, len(g.held))
	for _, e := range g.held {
		out = append(out, e.acct)
	}
	return out
}

func (s *AccountStore) lookup(number string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[number]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrAccountNotFound, number)
	}
	return e, nil
}

// Guard holds the mutation rights for a fixed set of accounts.
type Guard struct {
	held []*entry // in lock (lexicographic) order
}

// Acquire resolves every account and locks them in lexicographic order,
// returning a Guard over their mutation rights. If any account is unknown
// nothing is locked.
func (s *AccountStore) Acquire(numbers ...string) (*Guard, error) {
	uniq := make([]string, 0, len(numbers))
	seen := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			uniq = append(uniq, n)
		}
	}
	sort.Strings(uniq)

	held := make([]*entry, 0, len(uniq))
	for _, n := range uniq {
		e, err := s.lookup(n)
		if err != nil {
			return nil, err
		}
		held = append(held, e)
	}
	for _, e := range held {
		e.mu.Lock()
	}
	return &Guard{held: held}, nil
}

// Release gives up all held mutation rights.
func (g *Guard) Release() {
	for i := len(g.held) - 1; i >= 0; i-- {
		g.held[i].mu.Unlock()
	}
	g.held = nil
}

// ApplyDelta mutates a held account's balance if the precondition passes.
// A nil precondition always passes.
func (g *Guard) ApplyDelta(number string, delta decimal.Decimal, pre Precondition) (model.Account, error) {
	e := g.find(number)
	if e == nil {
		return model.Account{}, fmt.Errorf("%w: %s", model.ErrAccountNotFound, number)
	}
	if pre != nil && !pre(e.acct.Balance) {
		return model.Account{}, fmt.Errorf("%w: account %s", model.ErrPreconditionFailed, number)
	}
	e.acct.Balance = e.acct.Balance.Add(delta)
	return e.acct, nil
}

func (g *Guard) find(number string) *entry {
	for _, e := range g.held {
		if e.acct.Number == number {
			return e
		}
	}
	return nil
}
