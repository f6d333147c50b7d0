package customer_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestNewCustomer(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		c, err := customer.NewCustomer("Somchai", customer.Phone, "0812345678", ptr(""), ptr("likes spicy"), now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Somchai", c.Name())
		assert.Equal(t, customer.Phone, c.MainContactType())
		assert.Equal(t, "0812345678", c.MainContactValue())
		assert.Nil(t, c.OtherContacts())
		assert.Equal(t, "likes spicy", *c.Notes())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("required fields", func(t *testing.T) {
		_, err := customer.NewCustomer(" ", "", "", nil, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "main_contact_type")
	})

	t.Run("unknown contact type", func(t *testing.T) {
		_, err := customer.NewCustomer("Nok", "email", "nok@example.com", nil, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCustomerApply(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("ignores empty required fields and clears optional ones", func(t *testing.T) {
		c, err := customer.NewCustomer("Somchai", customer.Phone, "0812345678", ptr("line: somchai"), nil, now)
		require.NoError(t, err)

		err = c.Apply(customer.Patch{
			Name:          nullable.NewNullableWithValue(""),
			OtherContacts: nullable.NewNullNullable[string](),
			Notes:         nullable.NewNullableWithValue("vip"),
		}, later)

		require.NoError(t, err)
		assert.Equal(t, "Somchai", c.Name())
		assert.Nil(t, c.OtherContacts())
		assert.Equal(t, "vip", *c.Notes())
		assert.Equal(t, later, c.UpdatedAt())
	})

	t.Run("switches the main contact", func(t *testing.T) {
		c, err := customer.NewCustomer("Somchai", customer.Phone, "0812345678", nil, nil, now)
		require.NoError(t, err)

		err = c.Apply(customer.Patch{
			MainContactType:  nullable.NewNullableWithValue(customer.Line),
			MainContactValue: nullable.NewNullableWithValue("@somchai"),
		}, later)

		require.NoError(t, err)
		assert.Equal(t, customer.Line, c.MainContactType())
		assert.Equal(t, "@somchai", c.MainContactValue())
	})

	t.Run("rejects bad contact type without changes", func(t *testing.T) {
		c, err := customer.NewCustomer("Somchai", customer.Phone, "0812345678", nil, nil, now)
		require.NoError(t, err)

		err = c.Apply(customer.Patch{
			MainContactType: nullable.NewNullableWithValue(customer.ContactType("fax")),
			Notes:           nullable.NewNullableWithValue("x"),
		}, later)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, c.Notes())
		assert.Equal(t, now, c.UpdatedAt())
	})

	t.Run("rejects an empty patch", func(t *testing.T) {
		c, err := customer.NewCustomer("Somchai", customer.Phone, "0812345678", nil, nil, now)
		require.NoError(t, err)

		require.ErrorIs(t, c.Apply(customer.Patch{}, later), errs.ErrValidation)
		require.ErrorIs(t, c.Apply(customer.Patch{Name: nullable.NewNullableWithValue("")}, later), errs.ErrValidation)
	})
}

func TestRestoreCustomer(t *testing.T) {
	snapshot := customer.Snapshot{ID: 4, Name: "Nok", MainContactType: customer.Facebook, MainContactValue: "nok.fb", CreatedAt: now, UpdatedAt: now}

	c := customer.RestoreCustomer(snapshot)

	require.NoError(t, c.Validate())
	assert.Equal(t, snapshot, c.Snapshot())

	var zero customer.Customer
	require.ErrorIs(t, zero.Validate(), customer.ErrCustomerIsNotConstructed)
}
