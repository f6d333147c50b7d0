package queries

import (
	"context"

	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	customerColumns = "id, name, main_contact_type, main_contact_value, other_contacts, notes, created_at, updated_at"
	addressColumns  = "id, customer_id, label, full_address, extra_info, latitude, longitude, created_at, updated_at"
)

// CustomerQueryHandler serves every customer and address read.
type CustomerQueryHandler struct {
	db *gorm.DB
}

func NewCustomerQueryHandler(db *gorm.DB) CustomerQueryHandler {
	return CustomerQueryHandler{db: db}
}

// List returns the newest customers first.
func (h CustomerQueryHandler) List(ctx context.Context, query ListCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	tx := db.Table("customers").Select(customerColumns)
	if query.q != "" {
		clause, args := containsAny(db, query.q, "name", "main_contact_value")
		tx = tx.Where(clause, args...)
	}

	customers := make([]CustomerView, 0)
	if err := tx.Order("id DESC").Limit(query.limit).Scan(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Get fails with errs.ErrObjectNotFound for an unknown customer.
func (h CustomerQueryHandler) Get(ctx context.Context, query GetCustomerQuery) (CustomerDetail, error) {
	if err := query.Validate(); err != nil {
		return CustomerDetail{}, err
	}

	db := h.db.WithContext(ctx)
	c, err := h.customer(db, query.customerID)
	if err != nil {
		return CustomerDetail{}, err
	}

	addresses, err := h.addresses(db, query.customerID)
	if err != nil {
		return CustomerDetail{}, err
	}
	return CustomerDetail{Customer: c, Addresses: addresses}, nil
}

// ListAddresses fails with errs.ErrObjectNotFound for an unknown customer.
func (h CustomerQueryHandler) ListAddresses(ctx context.Context, query ListAddressesQuery) ([]AddressView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	if _, err := h.customer(db, query.customerID); err != nil {
		return nil, err
	}
	return h.addresses(db, query.customerID)
}

func (h CustomerQueryHandler) customer(db *gorm.DB, id int64) (CustomerView, error) {
	var c CustomerView
	res := db.Table("customers").Select(customerColumns).Where("id = ?", id).Limit(1).Scan(&c)
	if res.Error != nil {
		return CustomerView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return CustomerView{}, errs.NewObjectNotFoundError("customer", id)
	}
	return c, nil
}

func (h CustomerQueryHandler) addresses(db *gorm.DB, customerID int64) ([]AddressView, error) {
	addresses := make([]AddressView, 0)
	err := db.Table("addresses").
		Select(addressColumns).
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Scan(&addresses).Error
	return addresses, err
}
