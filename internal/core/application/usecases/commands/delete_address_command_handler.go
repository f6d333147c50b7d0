package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// DeleteAddressCommandHandler removes addresses.
type DeleteAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewDeleteAddressCommandHandler creates a handler for address removal.
func NewDeleteAddressCommandHandler(uowFactory CustomerUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the address. An address still referenced by an order is
// rejected with a validation error; orders keep their address for life.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inUse, err := uow.OrderRepository().ExistsForAddress(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if inUse {
		return errs.NewValueIsInvalidErrorWithCause("address_id",
			fmt.Errorf("address %d is used by existing orders", cmd.AddressID()))
	}

	if err = uow.AddressRepository().Delete(ctx, cmd.AddressID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
