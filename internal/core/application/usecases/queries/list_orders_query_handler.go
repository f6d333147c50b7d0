package queries

import (
	"context"

	"gorm.io/gorm"
)

const (
	orderSummaryColumns = `o.id, o.order_code, o.customer_id,
	c.name AS customer_name, c.main_contact_type, c.main_contact_value,
	o.created_at, o.delivery_date, o.delivery_time_slot, o.delivery_order_index,
	o.payment_method, o.payment_status, o.order_status`

	orderAddressColumns = `a.full_address, a.extra_info, a.latitude, a.longitude`

	// Unindexed orders go after indexed ones within a delivery day.
	deliveryOrder = `o.delivery_date ASC,
	CASE WHEN o.delivery_order_index IS NULL THEN 1 ELSE 0 END,
	o.delivery_order_index ASC, o.created_at ASC, o.id ASC`
)

// ListOrdersQueryHandler lists orders.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle applies every filter with AND. Newest orders come first unless the
// delivery sort was requested.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	columns := orderSummaryColumns
	if query.includeAddress {
		columns += ", " + orderAddressColumns
	}

	tx := db.Table("orders AS o").
		Select(columns).
		Joins("JOIN customers c ON c.id = o.customer_id").
		Joins("JOIN addresses a ON a.id = o.address_id")

	if query.q != "" {
		clause, args := containsAny(db, query.q, "c.name", "c.main_contact_value", "o.order_code", "a.full_address")
		tx = tx.Where(clause, args...)
	}
	if len(query.orderStatuses) > 0 {
		tx = tx.Where("o.order_status IN ?", query.orderStatuses)
	}
	if len(query.paymentStatuses) > 0 {
		tx = tx.Where("o.payment_status IN ?", query.paymentStatuses)
	}
	if query.paymentMethod != "" {
		tx = tx.Where("o.payment_method = ?", query.paymentMethod)
	}
	if query.createdFrom != nil {
		tx = tx.Where("o.created_at >= ?", *query.createdFrom)
	}
	if query.createdTo != nil {
		tx = tx.Where("o.created_at <= ?", *query.createdTo)
	}
	if query.deliveryFrom != nil {
		tx = tx.Where("o.delivery_date >= ?", *query.deliveryFrom)
	}
	if query.deliveryTo != nil {
		tx = tx.Where("o.delivery_date <= ?", *query.deliveryTo)
	}

	if query.sort == SortDelivery {
		tx = tx.Order(deliveryOrder)
	} else {
		tx = tx.Order("o.created_at DESC").Order("o.id DESC")
	}

	orders := make([]OrderSummary, 0)
	if err := tx.Limit(query.limit).Scan(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
