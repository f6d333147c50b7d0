package customerrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer and returns it with its generated id.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := customerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return customerToDomain(dto), nil
}

// Update writes every column of an existing customer except its creation time.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{ID: dto.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", dto.ID)
	}

	return nil
}

// Get retrieves a customer by id.
func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id)
		}
		return nil, err
	}

	return customerToDomain(dto), nil
}

// GormAddressRepository implements ports.AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add saves a new address and returns it with its generated id.
func (r *GormAddressRepository) Add(ctx context.Context, address *customer.Address) (*customer.Address, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	dto := addressFromDomain(address)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return addressToDomain(dto), nil
}

// Update writes an existing address. The owning customer never changes.
func (r *GormAddressRepository) Update(ctx context.Context, address *customer.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(address)
	result := r.db.WithContext(ctx).
		Model(&AddressDTO{ID: dto.ID}).
		Select("*").
		Omit("id", "customer_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", dto.ID)
	}

	return nil
}

// Get retrieves an address by id.
func (r *GormAddressRepository) Get(ctx context.Context, id int64) (*customer.Address, error) {
	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id)
		}
		return nil, err
	}

	return addressToDomain(dto), nil
}

// Delete removes an address by id.
func (r *GormAddressRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&AddressDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", id)
	}

	return nil
}
