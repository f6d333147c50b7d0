package migrations

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// The structs below freeze the schema as of 001. Later changes to the
// repository DTOs must not alter what this step creates.

type customerV1 struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"size:255;not null"`
	MainContactType  string `gorm:"size:16;not null;check:main_contact_type IN ('phone','line','facebook')"`
	MainContactValue string `gorm:"size:255;not null"`
	OtherContacts    *string
	Notes            *string
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (customerV1) TableName() string { return "customers" }

type addressV1 struct {
	ID          int64       `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64       `gorm:"not null;index:idx_addresses_customer"`
	Customer    *customerV1 `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Label       *string     `gorm:"size:64"`
	FullAddress string      `gorm:"not null"`
	ExtraInfo   *string
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (addressV1) TableName() string { return "addresses" }

type productV1 struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	Description *string
	BasePrice   kernel.Money  `gorm:"type:numeric(12,2);not null"`
	Status      string        `gorm:"size:16;not null;default:active;check:status IN ('active','inactive','promotion')"`
	PromoPrice  *kernel.Money `gorm:"type:numeric(12,2)"`
	CreatedAt   time.Time     `gorm:"not null"`
	UpdatedAt   time.Time     `gorm:"not null"`
}

func (productV1) TableName() string { return "products" }

type orderV1 struct {
	ID                 int64       `gorm:"primaryKey;autoIncrement"`
	OrderCode          string      `gorm:"size:32;not null;uniqueIndex:idx_orders_code"`
	CustomerID         int64       `gorm:"not null;index:idx_orders_customer"`
	Customer           *customerV1 `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	AddressID          int64       `gorm:"not null"`
	Address            *addressV1  `gorm:"foreignKey:AddressID;constraint:OnDelete:RESTRICT"`
	CreatedAt          time.Time   `gorm:"not null"`
	DeliveryDate       *string     `gorm:"size:10;index:idx_orders_delivery_date"`
	DeliveryTimeSlot   *string     `gorm:"size:64"`
	PaymentMethod      string      `gorm:"size:32;not null;default:transfer"`
	PaymentStatus      string      `gorm:"size:16;not null;default:unpaid;index:idx_orders_payment_status;check:payment_status IN ('unpaid','paid','cod','refunded')"`
	OrderStatus        string      `gorm:"size:24;not null;default:pending;index:idx_orders_status;check:order_status IN ('pending','confirmed','preparing','out_for_delivery','delivered','cancelled')"`
	CancelReasonCode   *int        `gorm:"type:smallint;check:cancel_reason_code IS NULL OR cancel_reason_code BETWEEN 1 AND 5"`
	CancelReasonText   *string
	DeliveryOrderIndex *int
	AdminNote          *string
	LastUpdatedAt      time.Time `gorm:"not null"`
}

func (orderV1) TableName() string { return "orders" }

type orderItemV1 struct {
	ID        int64        `gorm:"primaryKey;autoIncrement"`
	OrderID   int64        `gorm:"not null;index:idx_order_items_order"`
	Order     *orderV1     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ProductID int64        `gorm:"not null"`
	Product   *productV1   `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  int          `gorm:"not null;default:1"`
	UnitPrice kernel.Money `gorm:"type:numeric(12,2);not null"`
	Discount  kernel.Money `gorm:"type:numeric(12,2);not null;check:discount >= 0"`
	LineTotal kernel.Money `gorm:"type:numeric(12,2);not null"`
}

func (orderItemV1) TableName() string { return "order_items" }

type orderSequenceV1 struct {
	Period     string `gorm:"primaryKey;size:6"`
	LastNumber int64  `gorm:"not null;default:0"`
}

func (orderSequenceV1) TableName() string { return "order_sequences" }

func initCoreTables(tx *gorm.DB) error {
	migrator := tx.Migrator()
	for _, table := range []any{
		&customerV1{},
		&productV1{},
		&addressV1{},
		&orderV1{},
		&orderItemV1{},
		&orderSequenceV1{},
	} {
		if migrator.HasTable(table) {
			continue
		}
		if err := migrator.CreateTable(table); err != nil {
			return err
		}
	}
	return nil
}
