package commands

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineInput is one requested line as received from a client. Nil fields
// take their defaults: quantity 1, catalog price, no discount.
type OrderLineInput struct {
	ProductID int64
	Quantity  *int
	UnitPrice *kernel.Money
	Discount  *kernel.Money
}

// OrderLine is a requested line with defaults applied. UnitPrice stays nil
// when the price is to be taken from the catalog.
type OrderLine struct {
	ProductID int64
	Quantity  int
	UnitPrice *kernel.Money
	Discount  kernel.Money
}

// CreateOrderCommand represents a request to place a new order for a
// customer at one of their addresses.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, addressID, order.Details{}, []OrderLineInput{
//	    {ProductID: 7},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	addressID  int64
	details    order.Details
	lines      []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates everything that can be checked without
// touching storage.
func NewCreateOrderCommand(customerID, addressID int64, details order.Details, lines []OrderLineInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAddressID(addressID),
		cmd.setDetails(details),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() int64      { return c.customerID }
func (c CreateOrderCommand) AddressID() int64       { return c.addressID }
func (c CreateOrderCommand) Details() order.Details { return c.details }

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("customer_id")
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setAddressID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("address_id")
	}
	c.addressID = id
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	var problems []error
	if details.Status != "" {
		problems = append(problems, details.Status.Validate())
	}
	if details.PaymentStatus != "" {
		problems = append(problems, details.PaymentStatus.Validate())
	}
	if details.CancelReasonCode != nil {
		problems = append(problems, details.CancelReasonCode.Validate())
	}
	if details.DeliveryDate != nil && *details.DeliveryDate != "" {
		if _, err := time.Parse(order.DateLayout, *details.DeliveryDate); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("delivery_date", err))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	if details.Status == order.Cancelled && details.CancelReasonCode == nil {
		return errs.ErrMissingCancelReason
	}

	c.details = details
	return nil
}

func (c *CreateOrderCommand) setLines(inputs []OrderLineInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("an order needs at least one item"))
	}

	lines := make([]OrderLine, 0, len(inputs))
	for i, in := range inputs {
		if in.ProductID <= 0 {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].product_id", i))
		}

		line := OrderLine{
			ProductID: in.ProductID,
			Quantity:  1,
			UnitPrice: in.UnitPrice,
		}
		if in.Quantity != nil {
			line.Quantity = *in.Quantity
		}
		if in.Discount != nil {
			if in.Discount.IsNegative() {
				return errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].discount", i), in.Discount.String(), "0.00", "unbounded")
			}
			line.Discount = *in.Discount
		}
		lines = append(lines, line)
	}

	c.lines = lines
	return nil
}
