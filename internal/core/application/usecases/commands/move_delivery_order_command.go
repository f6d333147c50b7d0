package commands

import (
	"errors"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrMoveDeliveryOrderCommandIsNotConstructed = errors.New(
	"MoveDeliveryOrderCommand must be created via NewMoveDeliveryOrderCommand constructor",
)

// MoveDeliveryOrderCommand moves one order a single place within a delivery
// list supplied by the client, head first.
type MoveDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderIDs  []int64
	orderID   int64
	direction services.Direction

	guard guard.ConstructorGuard
}

// NewMoveDeliveryOrderCommand validates the list, the order id and the direction.
func NewMoveDeliveryOrderCommand(orderIDs []int64, orderID int64, direction string) (MoveDeliveryOrderCommand, error) {
	cmd := MoveDeliveryOrderCommand{guard: guard.NewConstructorGuard()}

	if len(orderIDs) == 0 {
		return MoveDeliveryOrderCommand{}, errs.NewValueIsRequiredError("order_ids")
	}
	if orderID <= 0 {
		return MoveDeliveryOrderCommand{}, errs.NewValueIsRequiredError("order_id")
	}
	d, err := services.ParseDirection(direction)
	if err != nil {
		return MoveDeliveryOrderCommand{}, err
	}

	cmd.orderIDs = make([]int64, len(orderIDs))
	copy(cmd.orderIDs, orderIDs)
	cmd.orderID = orderID
	cmd.direction = d
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrMoveDeliveryOrderCommandIsNotConstructed)
}

func (c MoveDeliveryOrderCommand) OrderIDs() []int64             { return append([]int64(nil), c.orderIDs...) }
func (c MoveDeliveryOrderCommand) OrderID() int64                { return c.orderID }
func (c MoveDeliveryOrderCommand) Direction() services.Direction { return c.direction }
