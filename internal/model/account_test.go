package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	for _, input := range []string{"savings", "SAVINGS", " Savings "} {
		got, err := ParseAccountType(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, AccountTypeSavings, got)
	}

	got, err := ParseAccountType("Current")
	require.NoError(t, err)
	assert.Equal(t, AccountTypeCurrent, got)
}

func TestParseAccountType_Rejected(t *testing.T) {
	for _, input := range []string{"", "checking", "CURRENT extra", "savings account"} {
		_, err := ParseAccountType(input)
		require.Error(t, err, "input %q", input)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "accountType", verr.Field)
	}
}
