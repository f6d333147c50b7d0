package errs

import "fmt"

// ObjectNotFoundError reports that a referenced row does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates a not found error for the given object kind and id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates a not found error with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrObjectNotFound, sanitize(e.ParamName), sanitize(fmt.Sprint(e.ID)))
	return withCause(msg, e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidAssociationError reports two existing objects that must not be linked,
// e.g. an address that belongs to another customer.
type InvalidAssociationError struct {
	Subject string
	Owner   string
	Cause   error
}

// NewInvalidAssociationError creates an error stating that subject does not belong to owner.
func NewInvalidAssociationError(subject, owner string) *InvalidAssociationError {
	return &InvalidAssociationError{Subject: subject, Owner: owner}
}

func (e *InvalidAssociationError) Error() string {
	msg := fmt.Sprintf("%s: %s does not belong to %s", ErrInvalidAssociation, sanitize(e.Subject), sanitize(e.Owner))
	return withCause(msg, e.Cause)
}

func (e *InvalidAssociationError) Unwrap() error {
	return ErrInvalidAssociation
}
