// Package errs provides the error taxonomy shared by the order desk.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or not one of the allowed values
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: a referenced row does not exist
//   - InvalidAssociationError: two existing rows do not belong together
//
// The three value errors all match ErrValidation through errors.Is, so callers can
// classify a failure without knowing which field produced it. A cancellation without
// a resolvable reason is reported with the ErrMissingCancelReason sentinel.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
