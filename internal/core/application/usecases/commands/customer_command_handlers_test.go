package commands_test

import (
	"errors"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerMocks struct {
	uow       *MockUoW
	factory   *MockCustomerUoWFactory
	customers *MockCustomerRepository
	addresses *MockAddressRepository
	orders    *MockOrderRepository
}

func newCustomerMocks() customerMocks {
	m := customerMocks{
		uow:       new(MockUoW),
		factory:   new(MockCustomerUoWFactory),
		customers: new(MockCustomerRepository),
		addresses: new(MockAddressRepository),
		orders:    new(MockOrderRepository),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("CustomerRepository").Return(m.customers).Maybe()
	m.uow.On("AddressRepository").Return(m.addresses).Maybe()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	return m
}

func TestNewCreateCustomerCommand(t *testing.T) {
	cmd, err := commands.NewCreateCustomerCommand("Pim", customer.Line, "@pim", nil, ptr("vegan"))
	require.NoError(t, err)
	assert.Equal(t, "Pim", cmd.Name())
	assert.Equal(t, customer.Line, cmd.MainContactType())

	_, err = commands.NewCreateCustomerCommand(" ", "", "", nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "main_contact_type")
	assert.Contains(t, err.Error(), "main_contact_value")

	_, err = commands.NewCreateCustomerCommand("Pim", "email", "a@b", nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateCustomerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	m := newCustomerMocks()
	stored := storedCustomer(4)
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.customers.On("Add", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.Name() == "Pim" && c.MainContactType() == customer.Phone && c.CreatedAt().Equal(c.UpdatedAt())
		})).Return(stored, nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateCustomerCommand("Pim", customer.Phone, "0800000000", nil, nil)
	require.NoError(t, err)

	h := commands.NewCreateCustomerCommandHandler(m.factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, stored, got)
	m.uow.AssertExpectations(t)
	m.customers.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("empty patch is rejected by the constructor", func(t *testing.T) {
		_, err := commands.NewUpdateCustomerCommand(4, customer.Patch{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("applies and stores", func(t *testing.T) {
		ctx := t.Context()
		m := newCustomerMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.customers.On("Get", ctx, int64(4)).Return(storedCustomer(4), nil).Once(),
			m.customers.On("Update", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
				return c.Notes() == nil && c.Name() == "Pim K."
			})).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewUpdateCustomerCommand(4, customer.Patch{
			Name:  nullable.NewNullableWithValue("Pim K."),
			Notes: nullable.NewNullNullable[string](),
		})
		require.NoError(t, err)

		h := commands.NewUpdateCustomerCommandHandler(m.factory)
		got, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "Pim K.", got.Name())
		m.uow.AssertExpectations(t)
		m.customers.AssertExpectations(t)
	})
}

func TestAddAddressCommandHandler_Handle(t *testing.T) {
	t.Run("stores the address for an existing customer", func(t *testing.T) {
		ctx := t.Context()
		m := newCustomerMocks()
		stored := storedAddress(9, 4)
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.customers.On("Get", ctx, int64(4)).Return(storedCustomer(4), nil).Once(),
			m.addresses.On("Add", ctx, mock.MatchedBy(func(a *customer.Address) bool {
				return a.CustomerID() == 4 && a.FullAddress() == "1 Main Rd"
			})).Return(stored, nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewAddAddressCommand(4, "1 Main Rd", customer.AddressDetails{Label: ptr("home")})
		require.NoError(t, err)

		h := commands.NewAddAddressCommandHandler(m.factory)
		got, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Same(t, stored, got)
		m.uow.AssertExpectations(t)
		m.addresses.AssertExpectations(t)
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctx := t.Context()
		m := newCustomerMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.customers.On("Get", ctx, int64(4)).Return(nil, errs.NewObjectNotFoundError("customer", int64(4))).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewAddAddressCommand(4, "1 Main Rd", customer.AddressDetails{})
		require.NoError(t, err)

		h := commands.NewAddAddressCommandHandler(m.factory)
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.addresses.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := commands.NewAddAddressCommand(0, "", customer.AddressDetails{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customer_id")
		assert.Contains(t, err.Error(), "full_address")
	})
}

func TestUpdateAddressCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	m := newCustomerMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.addresses.On("Get", ctx, int64(9)).Return(storedAddress(9, 4), nil).Once(),
		m.addresses.On("Update", ctx, mock.Anything).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewUpdateAddressCommand(9, customer.AddressPatch{FullAddress: nullable.NewNullableWithValue("2 Side St")})
	require.NoError(t, err)

	h := commands.NewUpdateAddressCommandHandler(m.factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "2 Side St", got.FullAddress())
	assert.Equal(t, int64(4), got.CustomerID())
	m.uow.AssertExpectations(t)
}

func TestDeleteAddressCommandHandler_Handle(t *testing.T) {
	t.Run("unused address is deleted", func(t *testing.T) {
		ctx := t.Context()
		m := newCustomerMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("ExistsForAddress", ctx, int64(9)).Return(false, nil).Once(),
			m.addresses.On("Delete", ctx, int64(9)).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeleteAddressCommand(9)
		require.NoError(t, err)

		h := commands.NewDeleteAddressCommandHandler(m.factory)
		require.NoError(t, h.Handle(ctx, cmd))
		m.uow.AssertExpectations(t)
		m.addresses.AssertExpectations(t)
	})

	t.Run("address used by orders", func(t *testing.T) {
		ctx := t.Context()
		m := newCustomerMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("ExistsForAddress", ctx, int64(9)).Return(true, nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, _ := commands.NewDeleteAddressCommand(9)
		h := commands.NewDeleteAddressCommandHandler(m.factory)
		err := h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "used by existing orders")
		m.addresses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown address", func(t *testing.T) {
		ctx := t.Context()
		m := newCustomerMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("ExistsForAddress", ctx, int64(9)).Return(false, nil).Once(),
			m.addresses.On("Delete", ctx, int64(9)).Return(errs.NewObjectNotFoundError("address", int64(9))).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, _ := commands.NewDeleteAddressCommand(9)
		h := commands.NewDeleteAddressCommandHandler(m.factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("begin error", func(t *testing.T) {
		ctx := t.Context()
		m := newCustomerMocks()
		m.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

		cmd, _ := commands.NewDeleteAddressCommand(9)
		h := commands.NewDeleteAddressCommandHandler(m.factory)
		require.EqualError(t, h.Handle(ctx, cmd), "begin error")
	})
}
