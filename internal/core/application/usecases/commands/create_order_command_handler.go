package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"go.uber.org/zap"
)

// ErrProductNotFound marks an order line that names an unknown product.
// The wrapped error also matches errs.ErrObjectNotFound.
var ErrProductNotFound = errors.New("product not found")

// CreateOrderCommandHandler places orders. Everything from the ownership
// check to the last line item happens in one transaction, so a failure
// leaves neither an order nor a consumed order number behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, log)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(created.Code()) // N-0001
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	log        *zap.Logger
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, log *zap.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		log:        orNop(log),
		now:        utcNow,
	}
}

// Handle validates the customer and address, reserves the next order code of
// the current UTC month, prices every line and stores the order with its
// items. It returns the stored order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	owner, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	address, err := uow.AddressRepository().Get(ctx, cmd.AddressID())
	if err != nil {
		return nil, err
	}

	if err = address.BelongsTo(owner.ID()); err != nil {
		return nil, err
	}

	now := h.now()
	number, err := uow.SequenceRepository().Next(ctx, kernel.PeriodOf(now))
	if err != nil {
		return nil, err
	}

	code, err := order.NewCode(number)
	if err != nil {
		return nil, err
	}

	draft, err := order.NewOrder(code, owner.ID(), address.ID(), cmd.Details(), now)
	if err != nil {
		return nil, err
	}

	products := uow.ProductRepository()
	for _, line := range cmd.Lines() {
		p, err := products.Get(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, fmt.Errorf("%w: %w", ErrProductNotFound, err)
			}
			return nil, err
		}

		unitPrice := p.EffectivePrice()
		if line.UnitPrice != nil {
			unitPrice = *line.UnitPrice
		}

		item, err := order.NewItem(p.ID(), line.Quantity, unitPrice, line.Discount)
		if err != nil {
			return nil, err
		}
		if err = draft.AddItem(item); err != nil {
			return nil, err
		}
	}

	stored, err := uow.OrderRepository().Add(ctx, draft)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.log.Info("order_created",
		zap.Int64("order_id", stored.ID()),
		zap.String("order_code", string(stored.Code())),
		zap.Int64("customer_id", stored.CustomerID()),
		zap.Int("items", len(stored.Items())),
	)
	return stored, nil
}
