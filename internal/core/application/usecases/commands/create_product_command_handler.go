package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/product"
)

// CreateProductCommandHandler stores new catalog products.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	now        func() time.Time
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle stores the product and returns it with its id.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.BasePrice(), cmd.Status(), cmd.PromoPrice(), h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.ProductRepository().Add(ctx, p)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
