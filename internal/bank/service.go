package bank

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PraloyG18/Banking-Application/internal/directory"
	"github.com/PraloyG18/Banking-Application/internal/ledger"
	"github.com/PraloyG18/Banking-Application/internal/metrics"
	"github.com/PraloyG18/Banking-Application/internal/model"
	"github.com/PraloyG18/Banking-Application/internal/snapshot"
)

// Service is the caller-facing surface of the bank. It wires the customer
// directory to the ledger engine and records operation metrics.
type Service struct {
	directory *directory.Service
	accounts  *ledger.AccountStore
	log       *ledger.TransactionLog
	engine    *ledger.Engine
	collector *metrics.Collector
}

// NewService creates a bank over the given directory. The collector may be
// nil.
func NewService(dir *directory.Service, collector *metrics.Collector) *Service {
	accounts := ledger.NewAccountStore()
	log := ledger.NewTransactionLog()
	return &Service{
		directory: dir,
		accounts:  accounts,
		log:       log,
		engine:    ledger.NewEngine(accounts, log),
		collector: collector,
	}
}

// OpenAccount creates a customer and a zero-balance account of the given
// type, returning the new account number.
func (s *Service) OpenAccount(name, email, accountType string) (string, error) {
	start := time.Now()
	number, err := s.openAccount(name, email, accountType)
	s.collector.RecordOperation("open_account", start, err)
	return number, err
}

func (s *Service) openAccount(name, email, accountType string) (string, error) {
	acctType, err := model.ParseAccountType(accountType)
	if err != nil {
		return "", err
	}

	customer, err := s.directory.CreateCustomer(name, email)
	if err != nil {
		return "", err
	}

	number := s.directory.NextAccountNumber()
	if _, err := s.engine.CreateAccount(number, customer.ID, acctType); err != nil {
		return "", err
	}
	return number, nil
}

// Deposit credits amount to the account.
func (s *Service) Deposit(number string, amount decimal.Decimal, note string) (model.Account, error) {
	start := time.Now()
	acct, err := s.engine.Deposit(number, amount, note)
	s.collector.RecordOperation("deposit", start, err)
	return acct, err
}

// Withdraw debits amount from the account.
func (s *Service) Withdraw(number string, amount decimal.Decimal, note string) (model.Account, error) {
	start := time.Now()
	acct, err := s.engine.Withdraw(number, amount, note)
	s.collector.RecordOperation("withdraw", start, err)
	return acct, err
}

// Transfer moves amount between two accounts.
func (s *Service) Transfer(from, to string, amount decimal.Decimal, note string) (model.Account, model.Account, error) {
	start := time.Now()
	src, dst, err := s.engine.Transfer(from, to, amount, note)
	s.collector.RecordOperation("transfer", start, err)
	return src, dst, err
}

// GetStatement returns the account's transaction history, timestamp
// ascending.
func (s *Service) GetStatement(number string) ([]model.Transaction, error) {
	return s.engine.GetStatement(number)
}

// ListAccounts returns all accounts ordered by account number.
func (s *Service) ListAccounts() []model.Account {
	return s.engine.ListAccounts()
}

// FindCustomer returns the directory record behind an account owner.
func (s *Service) FindCustomer(customerID string) (model.Customer, error) {
	return s.directory.FindCustomer(customerID)
}

// SearchAccountsByCustomerName returns the accounts of every customer whose
// name contains the query (case-insensitive), ordered by account number.
func (s *Service) SearchAccountsByCustomerName(query string) []model.Account {
	var out []model.Account
	for _, c := range s.directory.FindCustomersByName(query) {
		out = append(out, s.accounts.ListByCustomer(c.ID)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Snapshot exports the full bank state.
func (s *Service) Snapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		AccountSeq:   s.directory.Sequence(),
		Customers:    s.directory.Customers(),
		Accounts:     s.engine.ListAccounts(),
		Transactions: s.log.All(),
	}
}

// Restore replaces the bank state from a snapshot. The existing store and
// log are discarded. The swap is not synchronized against in-flight
// operations: callers must restore before handing the service out, never
// while other goroutines are using it.
func (s *Service) Restore(snap snapshot.Snapshot) error {
	accounts := ledger.NewAccountStore()
	log := ledger.NewTransactionLog()

	for _, acct := range snap.Accounts {
		if err := accounts.Create(acct); err != nil {
			return err
		}
	}
	if err := log.Load(snap.Transactions); err != nil {
		return err
	}

	s.directory.Restore(snap.Customers, snap.AccountSeq)
	s.accounts = accounts
	s.log = log
	s.engine = ledger.NewEngine(accounts, log)
	return nil
}
