package ports

import (
	"context"

	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
)

// CareRepository defines the persistence contract for customer-care
// tickets. Storage enforces the 1:1 order binding with a unique index on
// the order reference.
type CareRepository interface {
	// Add persists a new ticket. A second ticket for the same order is
	// rejected with ObjectAlreadyExists.
	Add(ctx context.Context, ticket *carecase.Ticket) error

	// Update persists changes to an existing ticket.
	Update(ctx context.Context, ticket *carecase.Ticket) error

	// Get retrieves a ticket by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carecase.Ticket, error)

	// GetByOrderID retrieves the single ticket bound to an order.
	// Returns ObjectNotFound if the order has no ticket yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*carecase.Ticket, error)
}
