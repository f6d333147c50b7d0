package errs

import (
	"errors"
	"strings"
)

var (
	// ErrValidation groups every value error; it is never returned on its own.
	ErrValidation = errors.New("validation failed")

	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrObjectNotFound      = errors.New("object not found")
	ErrInvalidAssociation  = errors.New("invalid association")
	ErrMissingCancelReason = errors.New("cancel reason is required when cancelling")
)

// sanitize keeps user supplied values on a single line inside error messages.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + " (cause: " + sanitize(cause.Error()) + ")"
}
