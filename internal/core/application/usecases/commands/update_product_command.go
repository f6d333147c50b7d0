package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand carries a sparse change to one product. Existing
// order lines keep the prices they were placed with.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID int64
	patch     product.Patch

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand rejects a missing id and an empty patch.
func NewUpdateProductCommand(productID int64, patch product.Patch) (UpdateProductCommand, error) {
	if productID <= 0 {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("product_id")
	}
	if patch.IsEmpty() {
		return UpdateProductCommand{}, errs.NewValueIsRequiredErrorWithCause("patch", errors.New("no fields to update"))
	}

	return UpdateProductCommand{
		productID: productID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() int64     { return c.productID }
func (c UpdateProductCommand) Patch() product.Patch { return c.patch }
