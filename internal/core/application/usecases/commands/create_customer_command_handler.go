package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler stores new customers.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	now        func() time.Time
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle stores the customer and returns it with its id.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(
		cmd.Name(), cmd.MainContactType(), cmd.MainContactValue(),
		cmd.OtherContacts(), cmd.Notes(), h.now(),
	)
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

	stored, err := uow.CustomerRepository().Add(ctx, c)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
