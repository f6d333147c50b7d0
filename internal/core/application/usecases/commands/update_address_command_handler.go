package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/customer"
)

// UpdateAddressCommandHandler applies sparse address changes.
type UpdateAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
	now        func() time.Time
}

// NewUpdateAddressCommandHandler creates a handler for address updates.
func NewUpdateAddressCommandHandler(uowFactory CustomerUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle returns the updated address.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) (*customer.Address, error) {
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

	repo := uow.AddressRepository()
	address, err := repo.Get(ctx, cmd.AddressID())
	if err != nil {
		return nil, err
	}

	if err = address.Apply(cmd.Patch(), h.now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, address); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return address, nil
}
