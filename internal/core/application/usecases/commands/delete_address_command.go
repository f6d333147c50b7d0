package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand removes an address that no order ships to.
type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	addressID int64

	guard guard.ConstructorGuard
}

// NewDeleteAddressCommand creates a command to delete an address.
func NewDeleteAddressCommand(addressID int64) (DeleteAddressCommand, error) {
	if addressID <= 0 {
		return DeleteAddressCommand{}, errs.NewValueIsRequiredError("address_id")
	}
	return DeleteAddressCommand{addressID: addressID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

func (c DeleteAddressCommand) AddressID() int64 { return c.addressID }
