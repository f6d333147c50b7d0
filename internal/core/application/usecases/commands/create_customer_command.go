package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a new customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name             string
	mainContactType  customer.ContactType
	mainContactValue string
	otherContacts    *string
	notes            *string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand requires a name and a main contact of a known type.
func NewCreateCustomerCommand(name string, contactType customer.ContactType, contactValue string, otherContacts, notes *string) (CreateCustomerCommand, error) {
	var problems []error
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if contactType == "" {
		problems = append(problems, errs.NewValueIsRequiredError("main_contact_type"))
	} else {
		problems = append(problems, contactType.Validate())
	}
	if strings.TrimSpace(contactValue) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("main_contact_value"))
	}
	if err := errors.Join(problems...); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		name:             name,
		mainContactType:  contactType,
		mainContactValue: contactValue,
		otherContacts:    otherContacts,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string                          { return c.name }
func (c CreateCustomerCommand) MainContactType() customer.ContactType { return c.mainContactType }
func (c CreateCustomerCommand) MainContactValue() string              { return c.mainContactValue }
func (c CreateCustomerCommand) OtherContacts() *string                { return c.otherContacts }
func (c CreateCustomerCommand) Notes() *string                        { return c.notes }
