// Package stockrepo persists the stock ledger: one keyed counter row per
// (warehouse, product) pair plus an append-only pickup event log.
package stockrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/stock"
)

// StockItemDTO is one keyed counter of the stock ledger.
type StockItemDTO struct {
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`

	Quantity int
	Price    decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName overrides GORM's default naming to use "stock_items".
func (StockItemDTO) TableName() string {
	return "stock_items"
}

// PickupEventDTO is one immutable row of the pickup event log.
type PickupEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DealerID    uuid.UUID `gorm:"type:uuid;index"`
	StaffID     uuid.UUID `gorm:"type:uuid;index"`
	WarehouseID uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`

	PreviousQuantity int
	NewQuantity      int
	Quantity         int
	Price            decimal.Decimal `gorm:"type:numeric(14,2)"`

	RecordedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "pickup_events".
func (PickupEventDTO) TableName() string {
	return "pickup_events"
}

func itemFromDomain(item *stock.Item) StockItemDTO {
	return StockItemDTO{
		WarehouseID: item.WarehouseID().Bytes(),
		ProductID:   item.ProductID().Bytes(),
		Quantity:    item.Quantity(),
		Price:       item.Price(),
	}
}

func itemToDomain(dto StockItemDTO) (*stock.Item, error) {
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreItem(warehouseID, productID, dto.Quantity, dto.Price)
}

func eventFromDomain(event *stock.PickupEvent) PickupEventDTO {
	return PickupEventDTO{
		ID:               event.ID().Bytes(),
		DealerID:         event.DealerID().Bytes(),
		StaffID:          event.StaffID().Bytes(),
		WarehouseID:      event.WarehouseID().Bytes(),
		ProductID:        event.ProductID().Bytes(),
		PreviousQuantity: event.PreviousQuantity(),
		NewQuantity:      event.NewQuantity(),
		Quantity:         event.Quantity(),
		Price:            event.Price(),
		RecordedAt:       event.RecordedAt(),
	}
}
