package migrations

import "gorm.io/gorm"

const deliveryQueueIndex = "idx_orders_delivery_queue"

// orderQueueV2 only declares the columns of the composite index backing the
// delivery sort.
type orderQueueV2 struct {
	DeliveryDate       *string `gorm:"size:10;index:idx_orders_delivery_queue,priority:1"`
	DeliveryOrderIndex *int    `gorm:"index:idx_orders_delivery_queue,priority:2"`
}

func (orderQueueV2) TableName() string { return "orders" }

func addDeliveryQueueIndex(tx *gorm.DB) error {
	migrator := tx.Migrator()
	if migrator.HasIndex(&orderQueueV2{}, deliveryQueueIndex) {
		return nil
	}
	return migrator.CreateIndex(&orderQueueV2{}, deliveryQueueIndex)
}
