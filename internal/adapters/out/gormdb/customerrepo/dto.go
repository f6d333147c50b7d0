// Package customerrepo maps customers and their delivery addresses to the
// customers and addresses tables.
package customerrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/customer"
)

// CustomerDTO is the database shape of a customer.
type CustomerDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"size:255;not null"`
	MainContactType  string `gorm:"size:16;not null"`
	MainContactValue string `gorm:"size:255;not null"`
	OtherContacts    *string
	Notes            *string
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName overrides GORM's pluralization.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is the database shape of a delivery address.
type AddressDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64   `gorm:"not null"`
	Label       *string `gorm:"size:64"`
	FullAddress string  `gorm:"not null"`
	ExtraInfo   *string
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func customerFromDomain(c *customer.Customer) CustomerDTO {
	s := c.Snapshot()
	return CustomerDTO{
		ID:               s.ID,
		Name:             s.Name,
		MainContactType:  string(s.MainContactType),
		MainContactValue: s.MainContactValue,
		OtherContacts:    s.OtherContacts,
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func customerToDomain(dto CustomerDTO) *customer.Customer {
	return customer.RestoreCustomer(customer.Snapshot{
		ID:               dto.ID,
		Name:             dto.Name,
		MainContactType:  customer.ContactType(dto.MainContactType),
		MainContactValue: dto.MainContactValue,
		OtherContacts:    dto.OtherContacts,
		Notes:            dto.Notes,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	})
}

func addressFromDomain(a *customer.Address) AddressDTO {
	s := a.Snapshot()
	return AddressDTO{
		ID:          s.ID,
		CustomerID:  s.CustomerID,
		Label:       s.Label,
		FullAddress: s.FullAddress,
		ExtraInfo:   s.ExtraInfo,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func addressToDomain(dto AddressDTO) *customer.Address {
	return customer.RestoreAddress(customer.AddressSnapshot{
		ID:          dto.ID,
		CustomerID:  dto.CustomerID,
		Label:       dto.Label,
		FullAddress: dto.FullAddress,
		ExtraInfo:   dto.ExtraInfo,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
