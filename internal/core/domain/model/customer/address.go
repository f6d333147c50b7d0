package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"github.com/oapi-codegen/nullable"
)

// ErrAddressIsNotConstructed is returned when an Address was not built by NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a delivery destination owned by one customer.
type Address struct {
	id          int64
	customerID  int64
	label       *string
	fullAddress string
	extraInfo   *string
	latitude    *float64
	longitude   *float64
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// AddressDetails holds the optional parts of a new address.
type AddressDetails struct {
	Label     *string
	ExtraInfo *string
	Latitude  *float64
	Longitude *float64
}

// NewAddress creates an address for customerID.
func NewAddress(customerID int64, fullAddress string, details AddressDetails, now time.Time) (*Address, error) {
	a := &Address{
		label:     kernel.EmptyToNil(details.Label),
		extraInfo: kernel.EmptyToNil(details.ExtraInfo),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setCustomerID(customerID),
		a.setFullAddress(fullAddress),
		a.setLatitude(details.Latitude),
		a.setLongitude(details.Longitude),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// AddressSnapshot is the persisted state of an address.
type AddressSnapshot struct {
	ID          int64
	CustomerID  int64
	Label       *string
	FullAddress string
	ExtraInfo   *string
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreAddress rebuilds a stored address.
func RestoreAddress(s AddressSnapshot) *Address {
	return &Address{
		id:          s.ID,
		customerID:  s.CustomerID,
		label:       s.Label,
		fullAddress: s.FullAddress,
		extraInfo:   s.ExtraInfo,
		latitude:    s.Latitude,
		longitude:   s.Longitude,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		guard:       guard.NewConstructorGuard(),
	}
}

// Snapshot exports the current state for persistence.
func (a *Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		ID:          a.id,
		CustomerID:  a.customerID,
		Label:       a.label,
		FullAddress: a.fullAddress,
		ExtraInfo:   a.extraInfo,
		Latitude:    a.latitude,
		Longitude:   a.longitude,
		CreatedAt:   a.createdAt,
		UpdatedAt:   a.updatedAt,
	}
}

// Validate ensures the Address was created via a constructor.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) ID() int64            { return a.id }
func (a *Address) CustomerID() int64    { return a.customerID }
func (a *Address) Label() *string       { return a.label }
func (a *Address) FullAddress() string  { return a.fullAddress }
func (a *Address) ExtraInfo() *string   { return a.extraInfo }
func (a *Address) Latitude() *float64   { return a.latitude }
func (a *Address) Longitude() *float64  { return a.longitude }
func (a *Address) CreatedAt() time.Time { return a.createdAt }
func (a *Address) UpdatedAt() time.Time { return a.updatedAt }

// BelongsTo fails with errs.ErrInvalidAssociation unless the address is owned
// by customerID.
func (a *Address) BelongsTo(customerID int64) error {
	if a.customerID != customerID {
		return errs.NewInvalidAssociationError(
			fmt.Sprintf("address %d", a.id),
			fmt.Sprintf("customer %d", customerID),
		)
	}
	return nil
}

// AddressPatch is a sparse address update. The owning customer cannot change.
type AddressPatch struct {
	Label       nullable.Nullable[string]
	FullAddress nullable.Nullable[string]
	ExtraInfo   nullable.Nullable[string]
	Latitude    nullable.Nullable[float64]
	Longitude   nullable.Nullable[float64]
}

// IsEmpty reports whether p specifies no field at all.
func (p AddressPatch) IsEmpty() bool {
	return !p.Label.IsSpecified() && !p.FullAddress.IsSpecified() && !p.ExtraInfo.IsSpecified() &&
		!p.Latitude.IsSpecified() && !p.Longitude.IsSpecified()
}

// Apply changes the address according to p. Null and empty strings clear the
// optional fields; full_address can be replaced but never cleared.
func (a *Address) Apply(p AddressPatch, now time.Time) error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredErrorWithCause("patch", errors.New("no fields to update"))
	}

	next := *a
	var problems []error
	if p.Label.IsSpecified() {
		next.label = kernel.TextOrNil(p.Label)
	}
	if p.FullAddress.IsSpecified() {
		full, _ := kernel.Value(p.FullAddress)
		problems = append(problems, next.setFullAddress(full))
	}
	if p.ExtraInfo.IsSpecified() {
		next.extraInfo = kernel.TextOrNil(p.ExtraInfo)
	}
	if p.Latitude.IsSpecified() {
		problems = append(problems, next.setLatitude(kernel.PointerOrNil(p.Latitude)))
	}
	if p.Longitude.IsSpecified() {
		problems = append(problems, next.setLongitude(kernel.PointerOrNil(p.Longitude)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	next.updatedAt = now
	*a = next
	return nil
}

func (a *Address) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("customer_id")
	}
	a.customerID = id
	return nil
}

func (a *Address) setFullAddress(full string) error {
	if strings.TrimSpace(full) == "" {
		return errs.NewValueIsRequiredError("full_address")
	}
	a.fullAddress = full
	return nil
}

func (a *Address) setLatitude(lat *float64) error {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return errs.NewValueIsOutOfRangeError("latitude", *lat, -90, 90)
	}
	a.latitude = lat
	return nil
}

func (a *Address) setLongitude(lng *float64) error {
	if lng != nil && (*lng < -180 || *lng > 180) {
		return errs.NewValueIsOutOfRangeError("longitude", *lng, -180, 180)
	}
	a.longitude = lng
	return nil
}
