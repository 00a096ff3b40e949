package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraloyG18/Banking-Application/internal/model"
)

func TestCreateFindCustomer(t *testing.T) {
	s := NewService("AC", 6)

	c, err := s.CreateCustomer("Alice", "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	got, err := s.FindCustomer(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "a@x.com", got.Email)

	_, err = s.FindCustomer("no-such-id")
	require.ErrorIs(t, err, model.ErrCustomerNotFound)
}

func TestCreateCustomer_Validation(t *testing.T) {
	s := NewService("AC", 6)

	var verr *model.ValidationError

	_, err := s.CreateCustomer("", "a@x.com")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = s.CreateCustomer("   ", "a@x.com")
	require.ErrorAs(t, err, &verr)

	_, err = s.CreateCustomer("Alice", "not-an-email")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)

	assert.Empty(t, s.Customers(), "no record on failed validation")
}

func TestFindCustomersByName(t *testing.T) {
	s := NewService("AC", 6)
	_, err := s.CreateCustomer("Alice Smith", "alice@x.com")
	require.NoError(t, err)
	_, err = s.CreateCustomer("Bob Jones", "bob@x.com")
	require.NoError(t, err)
	_, err = s.CreateCustomer("MALICE Corp", "malice@x.com")
	require.NoError(t, err)

	got := s.FindCustomersByName("ali")
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Smith", got[0].Name)
	assert.Equal(t, "MALICE Corp", got[1].Name)

	assert.Len(t, s.FindCustomersByName(""), 3, "empty query matches everyone")
	assert.Empty(t, s.FindCustomersByName("zzz"))
}

func TestNextAccountNumber(t *testing.T) {
	s := NewService("AC", 6)

	assert.Equal(t, "AC000001", s.NextAccountNumber())
	assert.Equal(t, "AC000002", s.NextAccountNumber())
	assert.Equal(t, int64(2), s.Sequence())
}

func TestRestore(t *testing.T) {
	s := NewService("AC", 6)
	c, err := s.CreateCustomer("Alice", "a@x.com")
	require.NoError(t, err)
	s.NextAccountNumber()
	s.NextAccountNumber()

	fresh := NewService("AC", 6)
	fresh.Restore(s.Customers(), s.Sequence())

	got, err := fresh.FindCustomer(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	// Allocation continues after the restored sequence.
	assert.Equal(t, "AC000003", fresh.NextAccountNumber())
}
