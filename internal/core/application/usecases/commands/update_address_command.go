package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand carries a sparse change to one address.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID int64
	patch     customer.AddressPatch

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand rejects a missing id and an empty patch.
func NewUpdateAddressCommand(addressID int64, patch customer.AddressPatch) (UpdateAddressCommand, error) {
	if addressID <= 0 {
		return UpdateAddressCommand{}, errs.NewValueIsRequiredError("address_id")
	}
	if patch.IsEmpty() {
		return UpdateAddressCommand{}, errs.NewValueIsRequiredErrorWithCause("patch", errors.New("no fields to update"))
	}

	return UpdateAddressCommand{
		addressID: addressID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

func (c UpdateAddressCommand) AddressID() int64             { return c.addressID }
func (c UpdateAddressCommand) Patch() customer.AddressPatch { return c.patch }
