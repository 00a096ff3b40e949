package directory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/PraloyG18/Banking-Application/internal/id"
	"github.com/PraloyG18/Banking-Application/internal/model"
)

// Service owns customer records and account-number allocation. It is a
// collaborator of the ledger core, not part of it: the core only consumes
// customer ids and allocated numbers.
type Service struct {
	mu        sync.Mutex
	customers map[string]model.Customer
	order     []string // customer ids in creation order
	prefix    string
	width     int
	seq       int64
}

// NewService creates a directory whose account numbers use the given prefix
// and zero-padded width, e.g. ("AC", 6) -> "AC000001".
func NewService(prefix string, width int) *Service {
	return &Service{
		customers: make(map[string]model.Customer),
		prefix:    prefix,
		width:     width,
	}
}

// CreateCustomer validates and stores a new customer record.
func (s *Service) CreateCustomer(name, email string) (model.Customer, error) {
	if err := ValidateName(name); err != nil {
		return model.Customer{}, err
	}
	if err := ValidateEmail(email); err != nil {
		return model.Customer{}, err
	}

	c := model.Customer{ID: uuid.NewString(), Name: name, Email: email}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
	s.order = append(s.order, c.ID)
	return c, nil
}

// FindCustomer returns a customer by id.
func (s *Service) FindCustomer(customerID string) (model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[customerID]
	if !ok {
		return model.Customer{}, fmt.Errorf("%w: %s", model.ErrCustomerNotFound, customerID)
	}
	return c, nil
}

// FindCustomersByName returns customers whose name contains the query,
// case-insensitively, in creation order.
func (s *Service) FindCustomersByName(query string) []model.Customer {
	q := strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Customer
	for _, cid := range s.order {
		c := s.customers[cid]
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// NextAccountNumber allocates the next unique account number.
func (s *Service) NextAccountNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return id.FormatAccountNumber(s.prefix, s.width, s.seq)
}

// Customers returns all customers in creation order.
func (s *Service) Customers() []model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Customer, 0, len(s.order))
	for _, cid := range s.order {
		out = append(out, s.customers[cid])
	}
	return out
}

// Sequence returns the last allocated account-number sequence.
func (s *Service) Sequence() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// Restore replaces the directory contents, used when loading a snapshot.
func (s *Service) Restore(customers []model.Customer, seq int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = make(map[string]model.Customer, len(customers))
	s.order = s.order[:0]
	for _, c := range customers {
		s.customers[c.ID] = c
		s.order = append(s.order, c.ID)
	}
	s.seq = seq
}
