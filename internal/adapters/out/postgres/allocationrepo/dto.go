// Package allocationrepo persists the daily inventory allocation records,
// keyed by (warehouse, product, packer, day).
package allocationrepo

import (
	"time"

	"github.com/google/uuid"

	"distribution/internal/core/domain/model/allocation"
	"distribution/internal/core/domain/model/kernel"
)

// DailyRecordDTO is one persisted daily allocation record. The day is
// stored as a date column normalized to midnight UTC.
type DailyRecordDTO struct {
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackerID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day         time.Time `gorm:"type:date;primaryKey"`

	DeliveryStaffID uuid.UUID `gorm:"type:uuid;index"`
	DealerID        uuid.UUID `gorm:"type:uuid;index"`

	OutQuantity  int
	SellQuantity int
	IsReturned   bool
}

// TableName overrides GORM's default naming to use "daily_allocations".
func (DailyRecordDTO) TableName() string {
	return "daily_allocations"
}

func fromDomain(record *allocation.DailyRecord) DailyRecordDTO {
	return DailyRecordDTO{
		WarehouseID:     record.WarehouseID().Bytes(),
		ProductID:       record.ProductID().Bytes(),
		PackerID:        record.PackerID().Bytes(),
		Day:             record.Day().Time(),
		DeliveryStaffID: record.DeliveryStaffID().Bytes(),
		DealerID:        record.DealerID().Bytes(),
		OutQuantity:     record.OutQuantity(),
		SellQuantity:    record.SellQuantity(),
		IsReturned:      record.IsReturned(),
	}
}

func toDomain(dto DailyRecordDTO) (*allocation.DailyRecord, error) {
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	packerID, err := kernel.UUIDFromBytes(dto.PackerID[:])
	if err != nil {
		return nil, err
	}

	staffID, err := kernel.UUIDFromBytes(dto.DeliveryStaffID[:])
	if err != nil {
		return nil, err
	}

	dealerID, err := kernel.UUIDFromBytes(dto.DealerID[:])
	if err != nil {
		return nil, err
	}

	return allocation.RestoreDailyRecord(
		packerID,
		staffID,
		warehouseID,
		productID,
		dealerID,
		kernel.DayOf(dto.Day),
		dto.OutQuantity,
		dto.SellQuantity,
		dto.IsReturned,
	)
}
