package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product and returns it with its generated id.
	Add(ctx context.Context, aggregate *product.Product) (*product.Product, error)

	// Update writes an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id int64) (*product.Product, error)
}
