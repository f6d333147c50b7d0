// Package customer provides the Customer aggregate and the delivery addresses
// owned by a customer.
//
// Customers are never hard-deleted. An address belongs to exactly one customer
// for its whole life; BelongsTo is the ownership check used when an order is
// placed.
package customer
