package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for the stock ledger:
// one keyed counter per (warehouse, product) plus an append-only pickup
// event log.
type StockRepository interface {
	// Get retrieves the counter for a (warehouse, product) pair.
	// Returns ObjectNotFound if no pickup has ever been recorded for it.
	Get(ctx context.Context, warehouseID, productID kernel.UUID) (*stock.Item, error)

	// Upsert inserts or overwrites the counter with the item's state.
	Upsert(ctx context.Context, item *stock.Item) error

	// Consume atomically decrements the counter by amount. The decrement
	// is conditional on sufficient quantity; if the counter is absent or
	// would go negative the ledger stays unchanged and InsufficientStock
	// is returned.
	Consume(ctx context.Context, warehouseID, productID kernel.UUID, amount int) error

	// Restock atomically increments the counter by amount.
	// Returns ObjectNotFound if the counter does not exist.
	Restock(ctx context.Context, warehouseID, productID kernel.UUID, amount int) error

	// AddPickupEvent appends an immutable pickup event to the log.
	AddPickupEvent(ctx context.Context, event *stock.PickupEvent) error
}
