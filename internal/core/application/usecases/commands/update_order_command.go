package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand carries a sparse change to one order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand rejects an unknown id, an empty patch and malformed
// patch values. Cancellation rules depend on the stored order and are checked
// by the handler.
func NewUpdateOrderCommand(orderID int64, patch order.Patch) (UpdateOrderCommand, error) {
	if orderID <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("order_id")
	}
	if err := patch.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64     { return c.orderID }
func (c UpdateOrderCommand) Patch() order.Patch { return c.patch }
