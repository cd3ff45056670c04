package stockrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/stock"
	"distribution/internal/pkg/errs"
)

// GormStockRepository implements StockRepository using GORM. The counter
// mutations run as single conditional statements so concurrent consumers
// serialize on the row instead of racing a read-modify-write cycle.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Get retrieves the counter for a (warehouse, product) pair.
func (r *GormStockRepository) Get(ctx context.Context, warehouseID, productID kernel.UUID) (*stock.Item, error) {
	if err := errors.Join(warehouseID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto StockItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "warehouse_id = ? AND product_id = ?", warehouseID.Bytes(), productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stockItem", warehouseID.String()+"/"+productID.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// Upsert inserts or overwrites the counter with the item's state.
func (r *GormStockRepository) Upsert(ctx context.Context, item *stock.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warehouse_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "price"}),
		}).
		Create(&dto).Error
}

// Consume atomically decrements the counter. The decrement is conditional
// on sufficient quantity; an absent counter or one that would go negative
// leaves the ledger unchanged and returns InsufficientStock.
func (r *GormStockRepository) Consume(ctx context.Context, warehouseID, productID kernel.UUID, amount int) error {
	if err := errors.Join(warehouseID.Validate(), productID.Validate()); err != nil {
		return err
	}

	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE stock_items
		SET quantity = quantity - ?
		WHERE warehouse_id = ? AND product_id = ? AND quantity >= ?
	`, amount, warehouseID.Bytes(), productID.Bytes(), amount)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInsufficientStockError(warehouseID.String(), productID.String(), amount)
	}

	return nil
}

// Restock atomically increments the counter.
func (r *GormStockRepository) Restock(ctx context.Context, warehouseID, productID kernel.UUID, amount int) error {
	if err := errors.Join(warehouseID.Validate(), productID.Validate()); err != nil {
		return err
	}

	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE stock_items
		SET quantity = quantity + ?
		WHERE warehouse_id = ? AND product_id = ?
	`, amount, warehouseID.Bytes(), productID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stockItem", warehouseID.String()+"/"+productID.String())
	}

	return nil
}

// AddPickupEvent appends an immutable pickup event to the log.
func (r *GormStockRepository) AddPickupEvent(ctx context.Context, event *stock.PickupEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := eventFromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}
