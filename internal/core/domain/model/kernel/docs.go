// Package kernel provides core domain primitives shared by the order desk model.
//
// The package includes:
//   - Money: a fixed-point amount with two fraction digits, backed by shopspring/decimal
//   - Period: the year-month key (YYYYMM, UTC) that scopes order-code numbering
//   - Value, PointerOrNil, TextOrNil: helpers for tri-state patch fields
//
// Both are immutable values and safe for concurrent use.
package kernel
