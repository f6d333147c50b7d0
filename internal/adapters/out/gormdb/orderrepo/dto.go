// Package orderrepo maps order aggregates and their line items to the orders
// and order_items tables.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderDTO is the database shape of an order header.
type OrderDTO struct {
	ID                 int64                   `gorm:"primaryKey;autoIncrement"`
	OrderCode          string                  `gorm:"column:order_code;size:32;not null;uniqueIndex"`
	CustomerID         int64                   `gorm:"not null"`
	AddressID          int64                   `gorm:"not null"`
	CreatedAt          time.Time               `gorm:"not null"`
	DeliveryDate       *string                 `gorm:"size:10"`
	DeliveryTimeSlot   *string                 `gorm:"size:64"`
	PaymentMethod      string                  `gorm:"size:32;not null"`
	PaymentStatus      string                  `gorm:"size:16;not null"`
	OrderStatus        string                  `gorm:"size:24;not null"`
	CancelReasonCode   *order.CancelReasonCode `gorm:"type:smallint"`
	CancelReasonText   *string
	DeliveryOrderIndex *int
	AdminNote          *string
	LastUpdatedAt      time.Time `gorm:"not null"`
	Items              []ItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's pluralization.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the database shape of an order line.
type ItemDTO struct {
	ID        int64        `gorm:"primaryKey;autoIncrement"`
	OrderID   int64        `gorm:"not null"`
	ProductID int64        `gorm:"not null"`
	Quantity  int          `gorm:"not null"`
	UnitPrice kernel.Money `gorm:"type:numeric(12,2);not null"`
	Discount  kernel.Money `gorm:"type:numeric(12,2);not null"`
	LineTotal kernel.Money `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// updatableColumns are written by Update. Identity columns and items are
// fixed at creation.
var updatableColumns = []string{
	"delivery_date",
	"delivery_time_slot",
	"payment_method",
	"payment_status",
	"order_status",
	"cancel_reason_code",
	"cancel_reason_text",
	"delivery_order_index",
	"admin_note",
	"last_updated_at",
}

func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()

	items := make([]ItemDTO, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, ItemDTO{
			ID:        item.ID(),
			OrderID:   item.OrderID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Discount:  item.Discount(),
			LineTotal: item.LineTotal(),
		})
	}

	return OrderDTO{
		ID:                 s.ID,
		OrderCode:          string(s.Code),
		CustomerID:         s.CustomerID,
		AddressID:          s.AddressID,
		CreatedAt:          s.CreatedAt,
		DeliveryDate:       s.DeliveryDate,
		DeliveryTimeSlot:   s.DeliveryTimeSlot,
		PaymentMethod:      s.PaymentMethod,
		PaymentStatus:      string(s.PaymentStatus),
		OrderStatus:        string(s.Status),
		CancelReasonCode:   s.CancelReasonCode,
		CancelReasonText:   s.CancelReasonText,
		DeliveryOrderIndex: s.DeliveryOrderIndex,
		AdminNote:          s.AdminNote,
		LastUpdatedAt:      s.LastUpdatedAt,
		Items:              items,
	}
}

func toDomain(dto OrderDTO) *order.Order {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.RestoreItem(
			item.ID, item.OrderID, item.ProductID, item.Quantity,
			item.UnitPrice, item.Discount, item.LineTotal,
		))
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                 dto.ID,
		Code:               order.Code(dto.OrderCode),
		CustomerID:         dto.CustomerID,
		AddressID:          dto.AddressID,
		CreatedAt:          dto.CreatedAt,
		DeliveryDate:       dto.DeliveryDate,
		DeliveryTimeSlot:   dto.DeliveryTimeSlot,
		PaymentMethod:      dto.PaymentMethod,
		PaymentStatus:      order.PaymentStatus(dto.PaymentStatus),
		Status:             order.Status(dto.OrderStatus),
		CancelReasonCode:   dto.CancelReasonCode,
		CancelReasonText:   dto.CancelReasonText,
		DeliveryOrderIndex: dto.DeliveryOrderIndex,
		AdminNote:          dto.AdminNote,
		LastUpdatedAt:      dto.LastUpdatedAt,
		Items:              items,
	})
}
