package allocationrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"distribution/internal/core/domain/model/allocation"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// GormAllocationRepository implements AllocationRepository using GORM.
type GormAllocationRepository struct {
	db *gorm.DB
}

// NewGormAllocationRepository creates a new GORM allocation repository.
func NewGormAllocationRepository(db *gorm.DB) *GormAllocationRepository {
	return &GormAllocationRepository{db: db}
}

// Add persists a new daily record.
func (r *GormAllocationRepository) Add(ctx context.Context, record *allocation.DailyRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists changes to an existing daily record.
func (r *GormAllocationRepository) Update(ctx context.Context, record *allocation.DailyRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&DailyRecordDTO{}).
		Where("warehouse_id = ? AND product_id = ? AND packer_id = ? AND day = ?",
			dto.WarehouseID, dto.ProductID, dto.PackerID, dto.Day).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dailyRecord", recordKey(record))
	}

	return nil
}

// Get retrieves the record for a (warehouse, product, packer, day) key.
func (r *GormAllocationRepository) Get(
	ctx context.Context,
	warehouseID, productID, packerID kernel.UUID,
	day kernel.Day,
) (*allocation.DailyRecord, error) {
	if err := errors.Join(
		warehouseID.Validate(),
		productID.Validate(),
		packerID.Validate(),
		day.Validate(),
	); err != nil {
		return nil, err
	}

	var dto DailyRecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "warehouse_id = ? AND product_id = ? AND packer_id = ? AND day = ?",
			warehouseID.Bytes(), productID.Bytes(), packerID.Bytes(), day.Time()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dailyRecord",
				fmt.Sprintf("%s/%s/%s/%s", warehouseID, productID, packerID, day))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForSale retrieves the record holding a delivery staff's stock of a
// product, regardless of which packer handed it out. Stock packed out on
// an earlier day and still in the staff's hands sells against that day's
// record, so the lookup takes the most recent open record on or before
// the sale day.
func (r *GormAllocationRepository) GetForSale(
	ctx context.Context,
	deliveryStaffID, productID kernel.UUID,
	day kernel.Day,
) (*allocation.DailyRecord, error) {
	if err := errors.Join(
		deliveryStaffID.Validate(),
		productID.Validate(),
		day.Validate(),
	); err != nil {
		return nil, err
	}

	var dto DailyRecordDTO
	err := r.db.WithContext(ctx).
		Where("delivery_staff_id = ? AND product_id = ? AND day <= ? AND is_returned = ?",
			deliveryStaffID.Bytes(), productID.Bytes(), day.Time(), false).
		Order("day DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dailyRecord",
				fmt.Sprintf("%s/%s/%s", deliveryStaffID, productID, day))
		}
		return nil, err
	}

	return toDomain(dto)
}

func recordKey(record *allocation.DailyRecord) string {
	return fmt.Sprintf("%s/%s/%s/%s",
		record.WarehouseID(), record.ProductID(), record.PackerID(), record.Day())
}
