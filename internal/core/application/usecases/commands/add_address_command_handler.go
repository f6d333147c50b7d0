package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/customer"
)

// AddAddressCommandHandler stores new addresses for existing customers.
type AddAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
	now        func() time.Time
}

// NewAddAddressCommandHandler creates a handler for adding addresses.
func NewAddAddressCommandHandler(uowFactory CustomerUoWFactory) AddAddressCommandHandler {
	return AddAddressCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle fails with errs.ErrObjectNotFound when the customer does not exist.
func (h *AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) (*customer.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	address, err := customer.NewAddress(owner.ID(), cmd.FullAddress(), cmd.Details(), h.now())
	if err != nil {
		return nil, err
	}

	stored, err := uow.AddressRepository().Add(ctx, address)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
