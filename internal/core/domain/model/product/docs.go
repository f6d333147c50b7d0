// Package product provides the catalog Product and its pricing rule.
//
// A product sells at its base price unless it is on promotion and carries a
// non-zero promo price. Order lines copy the effective price when the order is
// placed, so later catalog changes never alter existing orders.
package product
