package migrations

// All returns the declared migrations in application order. Ids are never
// renamed or reordered once released.
func All() []Migration {
	return []Migration{
		{ID: "001_init_core_tables", Up: initCoreTables},
		{ID: "002_delivery_queue_index", Up: addDeliveryQueueIndex},
	}
}
