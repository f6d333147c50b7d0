package customer

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// ContactType is the channel of a customer's main contact.
type ContactType string

const (
	Phone    ContactType = "phone"
	Line     ContactType = "line"
	Facebook ContactType = "facebook"
)

// ContactTypes lists every accepted contact channel.
func ContactTypes() []ContactType {
	return []ContactType{Phone, Line, Facebook}
}

// Validate reports whether c is a known contact channel.
func (c ContactType) Validate() error {
	for _, known := range ContactTypes() {
		if c == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("main_contact_type", fmt.Errorf("%q is not a contact type", string(c)))
}

func (c ContactType) String() string {
	return string(c)
}
