package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrLookupOrderStatusQueryIsNotConstructed = errors.New(
	"LookupOrderStatusQuery must be created via NewLookupOrderStatusQuery constructor",
)

// LookupOrderStatusQuery lets a customer check an order with the order code
// and the phone number it was placed under.
type LookupOrderStatusQuery struct {
	orderCode string
	phone     string

	guard guard.ConstructorGuard
}

func NewLookupOrderStatusQuery(orderCode, phone string) (LookupOrderStatusQuery, error) {
	orderCode = strings.TrimSpace(orderCode)
	phone = strings.TrimSpace(phone)

	var problems []error
	if orderCode == "" {
		problems = append(problems, errs.NewValueIsRequiredError("order_code"))
	}
	if phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}
	if err := errors.Join(problems...); err != nil {
		return LookupOrderStatusQuery{}, err
	}

	return LookupOrderStatusQuery{orderCode: orderCode, phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (q LookupOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrLookupOrderStatusQueryIsNotConstructed)
}

// PublicOrderView is the part of an order shown to its customer. Back-office
// fields such as the admin note are left out.
type PublicOrderView struct {
	ID                 int64     `json:"id"`
	OrderCode          string    `json:"order_code"`
	CreatedAt          time.Time `json:"created_at"`
	DeliveryDate       *string   `json:"delivery_date"`
	DeliveryTimeSlot   *string   `json:"delivery_time_slot"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentStatus      string    `json:"payment_status"`
	OrderStatus        string    `json:"order_status"`
	CancelReasonCode   *int      `json:"cancel_reason_code"`
	CancelReasonText   *string   `json:"cancel_reason_text"`
	DeliveryOrderIndex *int      `json:"delivery_order_index"`
	LastUpdatedAt      time.Time `json:"last_updated_at"`
	FullAddress        string    `json:"full_address"`
}

// PublicItemView is an order line without prices.
type PublicItemView struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// OrderStatusView answers a status lookup.
type OrderStatusView struct {
	Order PublicOrderView  `json:"order"`
	Items []PublicItemView `json:"items"`
}

// LookupOrderStatusQueryHandler serves the public status lookup.
type LookupOrderStatusQueryHandler struct {
	db *gorm.DB
}

func NewLookupOrderStatusQueryHandler(db *gorm.DB) LookupOrderStatusQueryHandler {
	return LookupOrderStatusQueryHandler{db: db}
}

// Handle only matches customers whose main contact is a phone number. Any
// mismatch is reported as errs.ErrObjectNotFound.
func (h LookupOrderStatusQueryHandler) Handle(ctx context.Context, query LookupOrderStatusQuery) (OrderStatusView, error) {
	if err := query.Validate(); err != nil {
		return OrderStatusView{}, err
	}

	db := h.db.WithContext(ctx)

	var o PublicOrderView
	res := db.Table("orders AS o").
		Select(`o.id, o.order_code, o.created_at, o.delivery_date, o.delivery_time_slot,
			o.payment_method, o.payment_status, o.order_status, o.cancel_reason_code,
			o.cancel_reason_text, o.delivery_order_index, o.last_updated_at, a.full_address`).
		Joins("JOIN customers c ON c.id = o.customer_id").
		Joins("JOIN addresses a ON a.id = o.address_id").
		Where("o.order_code = ? AND c.main_contact_type = ? AND c.main_contact_value = ?",
			query.orderCode, customer.Phone, query.phone).
		Limit(1).
		Scan(&o)
	if res.Error != nil {
		return OrderStatusView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return OrderStatusView{}, errs.NewObjectNotFoundError("order", query.orderCode)
	}

	items := make([]PublicItemView, 0)
	err := db.Table("order_items AS oi").
		Select("oi.id, oi.product_id, p.name AS product_name, oi.quantity").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("oi.order_id = ?", o.ID).
		Order("oi.id ASC").
		Scan(&items).Error
	if err != nil {
		return OrderStatusView{}, err
	}

	return OrderStatusView{Order: o, Items: items}, nil
}
