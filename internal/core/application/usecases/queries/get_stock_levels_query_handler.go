package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"distribution/internal/core/domain/model/kernel"
)

// GetStockLevelsQueryHandler reads the current stock ledger counters.
type GetStockLevelsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockLevelsQueryHandler creates a handler for stock level reads.
func NewGetStockLevelsQueryHandler(db *gorm.DB) GetStockLevelsQueryHandler {
	return GetStockLevelsQueryHandler{db: db}
}

// Handle executes the stock level query.
func (h GetStockLevelsQueryHandler) Handle(
	ctx context.Context,
	query GetStockLevelsQuery,
) ([]StockLevel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT warehouse_id, product_id, quantity, price
		FROM stock_items
	`
	args := make([]any, 0, 1)
	if warehouseID := query.WarehouseID(); warehouseID != nil {
		sql += " WHERE warehouse_id = ?"
		args = append(args, warehouseID.Bytes())
	}
	sql += " ORDER BY warehouse_id, product_id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make([]StockLevel, 0)
	for rows.Next() {
		var level StockLevel
		var warehouseID, productID uuid.UUID

		err = rows.Scan(&warehouseID, &productID, &level.Quantity, &level.Price)
		if err != nil {
			return nil, err
		}

		level.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:])
		if err != nil {
			return nil, err
		}

		level.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}

		levels = append(levels, level)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return levels, nil
}
