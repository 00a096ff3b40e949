package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAccountNumber(t *testing.T) {
	assert.Equal(t, "AC000001", FormatAccountNumber("AC", 6, 1))
	assert.Equal(t, "AC000042", FormatAccountNumber("AC", 6, 42))
	assert.Equal(t, "X0007", FormatAccountNumber("X", 4, 7))
}

func TestFormatAccountNumber_Overflow(t *testing.T) {
	// Sequences wider than the padding still format, just without padding.
	assert.Equal(t, "AC1000000", FormatAccountNumber("AC", 6, 1000000))
}

func TestParseAccountNumber(t *testing.T) {
	seq, err := ParseAccountNumber("AC000042", "AC")
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)
}

func TestParseAccountNumber_Errors(t *testing.T) {
	_, err := ParseAccountNumber("XX000001", "AC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing prefix")

	_, err = ParseAccountNumber("ACabc", "AC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sequence")
}

func TestRoundTrip(t *testing.T) {
	for _, seq := range []int64{1, 99, 123456} {
		number := FormatAccountNumber("AC", 6, seq)
		got, err := ParseAccountNumber(number, "AC")
		require.NoError(t, err)
		assert.Equal(t, seq, got)
	}
}
