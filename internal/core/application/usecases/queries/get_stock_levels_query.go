package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var ErrGetStockLevelsQueryIsNotConstructed = errors.New(
	"GetStockLevelsQuery must be created via NewGetStockLevelsQuery constructor",
)

// GetStockLevelsQuery reads the current ledger counters, optionally
// restricted to one warehouse.
type GetStockLevelsQuery struct {
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockLevelsQuery creates a stock level query. Pass nil to read the
// counters of every warehouse.
func NewGetStockLevelsQuery(warehouseID *kernel.UUID) (GetStockLevelsQuery, error) {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetStockLevelsQuery{}, err
		}
	}

	return GetStockLevelsQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockLevelsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockLevelsQueryIsNotConstructed)
}

// WarehouseID returns the optional warehouse filter.
func (q GetStockLevelsQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// StockLevel is one ledger counter.
type StockLevel struct {
	WarehouseID kernel.UUID
	ProductID   kernel.UUID
	Quantity    int
	Price       decimal.Decimal
}
