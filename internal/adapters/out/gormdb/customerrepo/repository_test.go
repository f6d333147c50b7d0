package customerrepo_test

import (
	"testing"
	"time"

	"orderdesk/internal/adapters/out/gormdb/customerrepo"
	"orderdesk/internal/adapters/out/gormdb/gormtest"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCustomerRepository_AddGetUpdate(t *testing.T) {
	db := gormtest.Open(t)
	repo := customerrepo.NewGormCustomerRepository(db)
	now := time.Date(2024, 10, 5, 9, 0, 0, 0, time.UTC)

	c, err := customer.NewCustomer("Somchai", customer.Phone, "0812345678", nil, ptr("VIP"), now)
	require.NoError(t, err)

	stored, err := repo.Add(t.Context(), c)
	require.NoError(t, err)
	require.Positive(t, stored.ID())

	got, err := repo.Get(t.Context(), stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "Somchai", got.Name())
	assert.Equal(t, customer.Phone, got.MainContactType())
	assert.Equal(t, "0812345678", got.MainContactValue())
	assert.Nil(t, got.OtherContacts())
	require.NotNil(t, got.Notes())
	assert.Equal(t, "VIP", *got.Notes())
	assert.True(t, got.CreatedAt().Equal(now))

	require.NoError(t, got.Apply(customer.Patch{
		Name:  nullable.NewNullableWithValue("Somchai J."),
		Notes: nullable.NewNullNullable[string](),
	}, now.Add(time.Hour)))
	require.NoError(t, repo.Update(t.Context(), got))

	updated, err := repo.Get(t.Context(), stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "Somchai J.", updated.Name())
	assert.Nil(t, updated.Notes())
	assert.True(t, updated.CreatedAt().Equal(now))
}

func TestCustomerRepository_NotFound(t *testing.T) {
	db := gormtest.Open(t)
	repo := customerrepo.NewGormCustomerRepository(db)

	_, err := repo.Get(t.Context(), 404)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	ghost := customer.RestoreCustomer(customer.Snapshot{
		ID: 404, Name: "ghost", MainContactType: customer.Line, MainContactValue: "x",
	})
	err = repo.Update(t.Context(), ghost)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddressRepository_Lifecycle(t *testing.T) {
	db := gormtest.Open(t)
	customers := customerrepo.NewGormCustomerRepository(db)
	addresses := customerrepo.NewGormAddressRepository(db)
	now := time.Date(2024, 10, 5, 9, 0, 0, 0, time.UTC)

	c, err := customer.NewCustomer("Nok", customer.Line, "nok.line", nil, nil, now)
	require.NoError(t, err)
	c, err = customers.Add(t.Context(), c)
	require.NoError(t, err)

	a, err := customer.NewAddress(c.ID(), "99 Sukhumvit Rd", customer.AddressDetails{
		Label:    ptr("home"),
		Latitude: ptr(13.7563),
	}, now)
	require.NoError(t, err)

	stored, err := addresses.Add(t.Context(), a)
	require.NoError(t, err)
	require.Positive(t, stored.ID())
	assert.Equal(t, c.ID(), stored.CustomerID())

	got, err := addresses.Get(t.Context(), stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "99 Sukhumvit Rd", got.FullAddress())
	require.NotNil(t, got.Latitude())
	assert.InDelta(t, 13.7563, *got.Latitude(), 1e-9)
	assert.Nil(t, got.Longitude())

	require.NoError(t, got.Apply(customer.AddressPatch{
		Label:     nullable.NewNullableWithValue(""),
		Longitude: nullable.NewNullableWithValue(100.5018),
	}, now.Add(time.Minute)))
	require.NoError(t, addresses.Update(t.Context(), got))

	updated, err := addresses.Get(t.Context(), stored.ID())
	require.NoError(t, err)
	assert.Nil(t, updated.Label())
	require.NotNil(t, updated.Longitude())
	assert.InDelta(t, 100.5018, *updated.Longitude(), 1e-9)

	require.NoError(t, addresses.Delete(t.Context(), stored.ID()))
	_, err = addresses.Get(t.Context(), stored.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	err = addresses.Delete(t.Context(), stored.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
