package ports

import (
	"context"

	"distribution/internal/core/domain/model/allocation"
	"distribution/internal/core/domain/model/kernel"
)

// AllocationRepository defines the persistence contract for daily
// inventory allocation records.
type AllocationRepository interface {
	// Add persists a new daily record.
	Add(ctx context.Context, record *allocation.DailyRecord) error

	// Update persists changes to an existing daily record.
	Update(ctx context.Context, record *allocation.DailyRecord) error

	// Get retrieves the record for a (warehouse, product, packer, day)
	// key. Returns ObjectNotFound if no pack-out was recorded for it.
	Get(ctx context.Context, warehouseID, productID, packerID kernel.UUID, day kernel.Day) (*allocation.DailyRecord, error)

	// GetForSale retrieves the record holding a delivery staff's stock
	// of a product, regardless of which packer handed it out: the most
	// recent record on or before the given day that has not been
	// returned yet. Returns ObjectNotFound if the staff carries none.
	GetForSale(ctx context.Context, deliveryStaffID, productID kernel.UUID, day kernel.Day) (*allocation.DailyRecord, error)
}
