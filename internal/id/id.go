package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAccountNumber returns an account number like "AC000001": a prefix
// followed by a fixed-width, zero-padded sequence.
func FormatAccountNumber(prefix string, width int, seq int64) string {
	return fmt.Sprintf("%s%0*d", prefix, width, seq)
}

// ParseAccountNumber extracts the sequence from an account number.
func ParseAccountNumber(number, prefix string) (int64, error) {
	rest, ok := strings.CutPrefix(number, prefix)
	if !ok {
		return 0, fmt.Errorf("account number %q missing prefix %q", number, prefix)
	}

	seq, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in account number %q: %w", number, err)
	}
	return seq, nil
}
