package queries

import (
	"context"

	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

const orderViewColumns = `o.id, o.order_code, o.customer_id, o.address_id, o.created_at,
	o.delivery_date, o.delivery_time_slot, o.payment_method, o.payment_status, o.order_status,
	o.cancel_reason_code, o.cancel_reason_text, o.delivery_order_index, o.admin_note, o.last_updated_at,
	c.name AS customer_name, c.main_contact_type, c.main_contact_value,
	a.full_address, a.extra_info, a.latitude, a.longitude`

// GetOrderQueryHandler reads order details.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(42)
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown id. Items come in
// insertion order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	db := h.db.WithContext(ctx)

	var header OrderView
	res := db.Table("orders AS o").
		Select(orderViewColumns).
		Joins("JOIN customers c ON c.id = o.customer_id").
		Joins("JOIN addresses a ON a.id = o.address_id").
		Where("o.id = ?", query.OrderID()).
		Limit(1).
		Scan(&header)
	if res.Error != nil {
		return OrderDetail{}, res.Error
	}
	if res.RowsAffected == 0 {
		return OrderDetail{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	items, err := orderItems(db, header.ID)
	if err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{Order: header, Items: items}, nil
}

func orderItems(db *gorm.DB, orderID int64) ([]OrderItemView, error) {
	items := make([]OrderItemView, 0)
	err := db.Table("order_items AS oi").
		Select("oi.id, oi.product_id, p.name AS product_name, oi.quantity, oi.unit_price, oi.discount, oi.line_total").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id ASC").
		Scan(&items).Error
	return items, err
}
