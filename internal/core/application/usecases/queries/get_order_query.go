package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its customer, address and lines.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order_id")
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 { return q.orderID }

// OrderView is an order header joined with its customer and address.
type OrderView struct {
	ID                 int64     `json:"id"`
	OrderCode          string    `json:"order_code"`
	CustomerID         int64     `json:"customer_id"`
	AddressID          int64     `json:"address_id"`
	CreatedAt          time.Time `json:"created_at"`
	DeliveryDate       *string   `json:"delivery_date"`
	DeliveryTimeSlot   *string   `json:"delivery_time_slot"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentStatus      string    `json:"payment_status"`
	OrderStatus        string    `json:"order_status"`
	CancelReasonCode   *int      `json:"cancel_reason_code"`
	CancelReasonText   *string   `json:"cancel_reason_text"`
	DeliveryOrderIndex *int      `json:"delivery_order_index"`
	AdminNote          *string   `json:"admin_note"`
	LastUpdatedAt      time.Time `json:"last_updated_at"`

	CustomerName     string   `json:"customer_name"`
	MainContactType  string   `json:"main_contact_type"`
	MainContactValue string   `json:"main_contact_value"`
	FullAddress      string   `json:"full_address"`
	ExtraInfo        *string  `json:"extra_info"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

// OrderItemView is one order line with the product name.
type OrderItemView struct {
	ID          int64        `json:"id"`
	ProductID   int64        `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	UnitPrice   kernel.Money `json:"unit_price"`
	Discount    kernel.Money `json:"discount"`
	LineTotal   kernel.Money `json:"line_total"`
}

// OrderDetail is the full view of one order.
type OrderDetail struct {
	Order OrderView       `json:"order"`
	Items []OrderItemView `json:"items"`
}
