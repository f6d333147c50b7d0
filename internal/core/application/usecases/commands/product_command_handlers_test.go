package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductMocks() (*MockUoW, *MockProductUoWFactory, *MockProductRepository) {
	uow := new(MockUoW)
	factory := new(MockProductUoWFactory)
	repo := new(MockProductRepository)
	factory.On("Create").Return(uow).Once()
	uow.On("ProductRepository").Return(repo).Maybe()
	return uow, factory, repo
}

func TestNewCreateProductCommand(t *testing.T) {
	cmd, err := commands.NewCreateProductCommand("Pad thai", nil, kernel.MoneyFromInt(99), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "99.00", cmd.BasePrice().String())

	_, err = commands.NewCreateProductCommand("", nil, kernel.MoneyFromInt(1), "sold_out", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	uow, factory, repo := newProductMocks()

	promo := kernel.MoneyFromInt(79)
	stored := storedProduct(7, 99, product.Promotion, &promo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(p *product.Product) bool {
			return p.Name() == "Pad thai" && p.EffectivePrice().String() == "79.00"
		})).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateProductCommand("Pad thai", nil, kernel.MoneyFromInt(99), product.Promotion, &promo)
	require.NoError(t, err)

	h := commands.NewCreateProductCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, stored, got)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle(t *testing.T) {
	t.Run("ending a promotion", func(t *testing.T) {
		ctx := t.Context()
		uow, factory, repo := newProductMocks()

		promo := kernel.MoneyFromInt(79)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Get", ctx, int64(7)).Return(storedProduct(7, 99, product.Promotion, &promo), nil).Once(),
			repo.On("Update", ctx, mock.Anything).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewUpdateProductCommand(7, product.Patch{
			Status:     nullable.NewNullableWithValue(product.Active),
			PromoPrice: nullable.NewNullNullable[kernel.Money](),
		})
		require.NoError(t, err)

		h := commands.NewUpdateProductCommandHandler(factory)
		got, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Nil(t, got.PromoPrice())
		assert.Equal(t, "99.00", got.EffectivePrice().String())
		uow.AssertExpectations(t)
	})

	t.Run("negative base price", func(t *testing.T) {
		ctx := t.Context()
		uow, factory, repo := newProductMocks()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Get", ctx, int64(7)).Return(storedProduct(7, 99, product.Active, nil), nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewUpdateProductCommand(7, product.Patch{BasePrice: nullable.NewNullableWithValue(kernel.MoneyFromInt(-1))})
		require.NoError(t, err)

		h := commands.NewUpdateProductCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("empty patch", func(t *testing.T) {
		_, err := commands.NewUpdateProductCommand(7, product.Patch{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
