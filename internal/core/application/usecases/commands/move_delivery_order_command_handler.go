package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"

	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

// ErrQueuePartiallyPersisted is matched by a QueuePersistError.
var ErrQueuePartiallyPersisted = errors.New("delivery queue partially persisted")

// QueuePersistError reports how far persisting a reordered queue got before
// an update failed. Positions before Persisted hold their new index; the
// rest keep whatever they had.
type QueuePersistError struct {
	Persisted int
	Total     int
	Cause     error
}

func (e *QueuePersistError) Error() string {
	return fmt.Sprintf("%s: %d of %d positions stored: %v", ErrQueuePartiallyPersisted, e.Persisted, e.Total, e.Cause)
}

func (e *QueuePersistError) Unwrap() []error {
	return []error{ErrQueuePartiallyPersisted, e.Cause}
}

// OrderUpdater is the single-order update used to persist queue positions.
type OrderUpdater interface {
	Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error)
}

// MoveDeliveryOrderResult is the queue after the move.
type MoveDeliveryOrderResult struct {
	OrderIDs []int64
	Moved    bool
}

// MoveDeliveryOrderCommandHandler reorders a delivery list and stores the
// positions 1..n through the order update path, one transaction per order.
type MoveDeliveryOrderCommandHandler struct {
	queue   services.DeliveryQueue
	updater OrderUpdater
	log     *zap.Logger
}

// NewMoveDeliveryOrderCommandHandler creates a handler for delivery queue moves.
func NewMoveDeliveryOrderCommandHandler(updater OrderUpdater, log *zap.Logger) MoveDeliveryOrderCommandHandler {
	return MoveDeliveryOrderCommandHandler{
		queue:   services.NewDeliveryQueue(),
		updater: updater,
		log:     orNop(log),
	}
}

// Handle swaps the order with its neighbour. At the head or tail nothing is
// stored and Moved is false. On a storage failure it returns a
// *QueuePersistError; callers should reload the list.
func (h *MoveDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd MoveDeliveryOrderCommand) (MoveDeliveryOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return MoveDeliveryOrderResult{}, err
	}

	ids, moved, err := h.queue.Move(cmd.OrderIDs(), cmd.OrderID(), cmd.Direction())
	if err != nil {
		return MoveDeliveryOrderResult{}, err
	}
	if !moved {
		return MoveDeliveryOrderResult{OrderIDs: ids, Moved: false}, nil
	}

	for i, id := range ids {
		update, err := NewUpdateOrderCommand(id, order.Patch{
			DeliveryOrderIndex: nullable.NewNullableWithValue(i + 1),
		})
		if err == nil {
			_, err = h.updater.Handle(ctx, update)
		}
		if err != nil {
			h.log.Error("delivery_queue_persist_failed",
				zap.Int64("order_id", id),
				zap.Int("persisted", i),
				zap.Int("total", len(ids)),
				zap.Error(err),
			)
			return MoveDeliveryOrderResult{}, &QueuePersistError{Persisted: i, Total: len(ids), Cause: err}
		}
	}

	return MoveDeliveryOrderResult{OrderIDs: ids, Moved: true}, nil
}
