package postgres

import (
	"gorm.io/gorm"

	"distribution/internal/adapters/out/postgres/allocationrepo"
	"distribution/internal/adapters/out/postgres/carerepo"
	"distribution/internal/adapters/out/postgres/masterdata"
	"distribution/internal/adapters/out/postgres/orderrepo"
	"distribution/internal/adapters/out/postgres/stockrepo"
)

// Migrate creates or updates the database schema for all adapters.
// Master-data tables are included so a fresh database is usable, but
// their rows are maintained by outside tooling.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&masterdata.RetailerDTO{},
		&masterdata.DealerDTO{},
		&masterdata.AgentDTO{},
		&masterdata.DeliveryStaffDTO{},
		&masterdata.PackerDTO{},
		&masterdata.WarehouseDTO{},
		&masterdata.AreaDTO{},
		&masterdata.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&stockrepo.StockItemDTO{},
		&stockrepo.PickupEventDTO{},
		&allocationrepo.DailyRecordDTO{},
		&carerepo.TicketDTO{},
	)
}
