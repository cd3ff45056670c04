// Package ports defines repository and collaborator interfaces for the
// distribution domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including all line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves the order aggregates for the given identifiers.
	// Returns ObjectNotFound if any of the identifiers is absent, so
	// bulk operations fail as a whole instead of silently skipping.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
}
