package queries

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
	ErrListAddressesQueryIsNotConstructed = errors.New(
		"ListAddressesQuery must be created via NewListAddressesQuery constructor",
	)
)

// CustomerView is a stored customer.
type CustomerView struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	MainContactType  string    `json:"main_contact_type"`
	MainContactValue string    `json:"main_contact_value"`
	OtherContacts    *string   `json:"other_contacts"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AddressView is a stored address.
type AddressView struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customer_id"`
	Label       *string   `json:"label"`
	FullAddress string    `json:"full_address"`
	ExtraInfo   *string   `json:"extra_info"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerDetail is a customer with every address, newest first.
type CustomerDetail struct {
	Customer  CustomerView  `json:"customer"`
	Addresses []AddressView `json:"addresses"`
}

// ListCustomersQuery searches customers by name or main contact value.
type ListCustomersQuery struct {
	q     string
	limit int

	guard guard.ConstructorGuard
}

func NewListCustomersQuery(q string, limit int) ListCustomersQuery {
	return ListCustomersQuery{
		q:     strings.TrimSpace(q),
		limit: normalizeLimit(limit),
		guard: guard.NewConstructorGuard(),
	}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// GetCustomerQuery reads one customer with addresses.
type GetCustomerQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID int64) (GetCustomerQuery, error) {
	if customerID <= 0 {
		return GetCustomerQuery{}, errs.NewValueIsRequiredError("customer_id")
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// ListAddressesQuery lists the addresses of one customer.
type ListAddressesQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewListAddressesQuery(customerID int64) (ListAddressesQuery, error) {
	if customerID <= 0 {
		return ListAddressesQuery{}, errs.NewValueIsRequiredError("customer_id")
	}
	return ListAddressesQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}
