package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items and returns it as
	// stored, carrying the generated ids.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update writes the mutable header fields of an existing order.
	// Items are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items, ordered by item id.
	// Returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// ExistsForAddress reports whether any order ships to the address.
	ExistsForAddress(ctx context.Context, addressID int64) (bool, error)
}
