package directory

import (
	"strings"

	"github.com/PraloyG18/Banking-Application/internal/model"
)

// ValidateName requires a non-blank customer name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &model.ValidationError{Field: "name", Reason: "is required"}
	}
	return nil
}

// ValidateEmail requires a plausible email address.
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return &model.ValidationError{Field: "email", Reason: "must contain @"}
	}
	return nil
}
