package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// UpdateOrderCommandHandler applies status, payment and scheduling changes
// to an order.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	log        *zap.Logger
	now        func() time.Time
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, log *zap.Logger) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		log:        orNop(log),
		now:        utcNow,
	}
}

// Handle loads the order, applies the patch, writes it and returns the order
// as re-read inside the same transaction. A patch that would leave a
// cancelled order without a reason code fails with errs.ErrMissingCancelReason
// and writes nothing.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := current.Status()
	if err = current.Apply(cmd.Patch(), h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	refreshed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.log.Info("order_updated",
		zap.Int64("order_id", refreshed.ID()),
		zap.String("order_code", string(refreshed.Code())),
		zap.String("status_from", string(previous)),
		zap.String("status_to", string(refreshed.Status())),
	)
	return refreshed, nil
}
