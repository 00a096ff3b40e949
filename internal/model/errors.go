package model

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound indicates an unknown account number.
	ErrAccountNotFound = errors.New("account not found")
	// ErrCustomerNotFound indicates an unknown customer reference.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInsufficientFunds indicates a debit that would take a balance
	// negative. The operation leaves all state unchanged.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrPreconditionFailed indicates a balance guard rejected a delta.
	ErrPreconditionFailed = errors.New("balance precondition failed")
)

// ValidationError rejects bad input before any mutation takes place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FatalError wraps a non-recoverable failure such as an invariant violation
// or resource exhaustion. By the time a FatalError surfaces, any partial
// mutation made by the failing operation has been rolled back.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal during %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }
