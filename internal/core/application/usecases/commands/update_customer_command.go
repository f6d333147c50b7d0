package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand carries a sparse change to one customer.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	patch      customer.Patch

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand rejects a missing id and a patch that changes nothing.
func NewUpdateCustomerCommand(customerID int64, patch customer.Patch) (UpdateCustomerCommand, error) {
	if customerID <= 0 {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("customer_id")
	}
	if patch.IsEmpty() {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredErrorWithCause("patch", errors.New("no fields to update"))
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() int64     { return c.customerID }
func (c UpdateCustomerCommand) Patch() customer.Patch { return c.patch }
