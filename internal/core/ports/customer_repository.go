package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Customers are never deleted.
type CustomerRepository interface {
	// Add persists a new customer and returns it with its generated id.
	Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error)

	// Update writes an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id int64) (*customer.Customer, error)
}

// AddressRepository defines the persistence contract for customer addresses.
type AddressRepository interface {
	// Add persists a new address and returns it with its generated id.
	Add(ctx context.Context, address *customer.Address) (*customer.Address, error)

	// Update writes an existing address.
	Update(ctx context.Context, address *customer.Address) error

	// Get returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id int64) (*customer.Address, error)

	// Delete removes an address. Returns errs.ErrObjectNotFound when the id is unknown.
	Delete(ctx context.Context, id int64) error
}
