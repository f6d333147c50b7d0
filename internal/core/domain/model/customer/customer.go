package customer

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"github.com/oapi-codegen/nullable"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not built by NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a person or business that places orders.
type Customer struct {
	id               int64
	name             string
	mainContactType  ContactType
	mainContactValue string
	otherContacts    *string
	notes            *string
	createdAt        time.Time
	updatedAt        time.Time

	guard guard.ConstructorGuard
}

// NewCustomer validates and creates a customer that has not been stored yet.
func NewCustomer(name string, contactType ContactType, contactValue string, otherContacts, notes *string, now time.Time) (*Customer, error) {
	c := &Customer{
		otherContacts: kernel.EmptyToNil(otherContacts),
		notes:         kernel.EmptyToNil(notes),
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setMainContact(contactType, contactValue),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Snapshot is the persisted state of a customer.
type Snapshot struct {
	ID               int64
	Name             string
	MainContactType  ContactType
	MainContactValue string
	OtherContacts    *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RestoreCustomer rebuilds a stored customer.
func RestoreCustomer(s Snapshot) *Customer {
	return &Customer{
		id:               s.ID,
		name:             s.Name,
		mainContactType:  s.MainContactType,
		mainContactValue: s.MainContactValue,
		otherContacts:    s.OtherContacts,
		notes:            s.Notes,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
		guard:            guard.NewConstructorGuard(),
	}
}

// Snapshot exports the current state for persistence.
func (c *Customer) Snapshot() Snapshot {
	return Snapshot{
		ID:               c.id,
		Name:             c.name,
		MainContactType:  c.mainContactType,
		MainContactValue: c.mainContactValue,
		OtherContacts:    c.otherContacts,
		Notes:            c.notes,
		CreatedAt:        c.createdAt,
		UpdatedAt:        c.updatedAt,
	}
}

// Validate ensures the Customer was created via a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() int64                    { return c.id }
func (c *Customer) Name() string                 { return c.name }
func (c *Customer) MainContactType() ContactType { return c.mainContactType }
func (c *Customer) MainContactValue() string     { return c.mainContactValue }
func (c *Customer) OtherContacts() *string       { return c.otherContacts }
func (c *Customer) Notes() *string               { return c.notes }
func (c *Customer) CreatedAt() time.Time         { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time         { return c.updatedAt }

// Patch is a sparse customer update. Name and the main contact cannot be
// cleared: null or empty values there are ignored.
type Patch struct {
	Name             nullable.Nullable[string]
	MainContactType  nullable.Nullable[ContactType]
	MainContactValue nullable.Nullable[string]
	OtherContacts    nullable.Nullable[string]
	Notes            nullable.Nullable[string]
}

// IsEmpty reports whether p would change nothing.
func (p Patch) IsEmpty() bool {
	name, _ := kernel.Value(p.Name)
	contactType, _ := kernel.Value(p.MainContactType)
	contactValue, _ := kernel.Value(p.MainContactValue)
	return name == "" && contactType == "" && contactValue == "" &&
		!p.OtherContacts.IsSpecified() && !p.Notes.IsSpecified()
}

// Apply changes the customer according to p. On error nothing changes.
func (c *Customer) Apply(p Patch, now time.Time) error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredErrorWithCause("patch", errors.New("no fields to update"))
	}

	next := *c
	if name, ok := kernel.Value(p.Name); ok && strings.TrimSpace(name) != "" {
		next.name = name
	}
	if contactType, ok := kernel.Value(p.MainContactType); ok && contactType != "" {
		if err := contactType.Validate(); err != nil {
			return err
		}
		next.mainContactType = contactType
	}
	if contactValue, ok := kernel.Value(p.MainContactValue); ok && contactValue != "" {
		next.mainContactValue = contactValue
	}
	if p.OtherContacts.IsSpecified() {
		next.otherContacts = kernel.TextOrNil(p.OtherContacts)
	}
	if p.Notes.IsSpecified() {
		next.notes = kernel.TextOrNil(p.Notes)
	}

	next.updatedAt = now
	*c = next
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setMainContact(contactType ContactType, value string) error {
	if contactType == "" {
		return errs.NewValueIsRequiredError("main_contact_type")
	}
	if err := contactType.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError("main_contact_value")
	}
	c.mainContactType = contactType
	c.mainContactValue = value
	return nil
}
