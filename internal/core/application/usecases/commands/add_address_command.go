package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrAddAddressCommandIsNotConstructed = errors.New(
	"AddAddressCommand must be created via NewAddAddressCommand constructor",
)

// AddAddressCommand attaches a delivery address to a customer.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
	customerID  int64
	fullAddress string
	details     customer.AddressDetails

	guard guard.ConstructorGuard
}

// NewAddAddressCommand requires the owner and the address text.
func NewAddAddressCommand(customerID int64, fullAddress string, details customer.AddressDetails) (AddAddressCommand, error) {
	var problems []error
	if customerID <= 0 {
		problems = append(problems, errs.NewValueIsRequiredError("customer_id"))
	}
	if strings.TrimSpace(fullAddress) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("full_address"))
	}
	if err := errors.Join(problems...); err != nil {
		return AddAddressCommand{}, err
	}

	return AddAddressCommand{
		customerID:  customerID,
		fullAddress: fullAddress,
		details:     details,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

func (c AddAddressCommand) CustomerID() int64                { return c.customerID }
func (c AddAddressCommand) FullAddress() string              { return c.fullAddress }
func (c AddAddressCommand) Details() customer.AddressDetails { return c.details }
