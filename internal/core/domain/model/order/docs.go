// Package order provides the Order aggregate of the order desk: the order header
// with its lifecycle and payment state, and the immutable line items captured
// when the order is placed.
//
// The package includes:
//   - Order: the aggregate root, created with NewOrder and changed only through Apply
//   - Item: a line item whose unit price and line total are snapshots taken at creation
//   - Status, PaymentStatus, CancelReasonCode: validated enumerations
//   - Code: the human-readable order code (N-0001) issued per period
//   - Patch: a sparse, tri-state update applied by Order.Apply
//
// Key business rules:
//   - Every status may follow every status; there is no transition table
//   - A cancelled order always carries a cancel reason code between 1 and 5
//   - Moving to any other status clears the cancel fields unless the same
//     patch sets them explicitly
//   - line_total = (unit_price - discount) * quantity and is never recomputed
package order
