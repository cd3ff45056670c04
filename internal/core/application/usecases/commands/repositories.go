// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"distribution/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StockRepoFactory provides access to the stock ledger repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// AllocationRepoFactory provides access to the daily allocation repository within a transaction.
	AllocationRepoFactory interface {
		AllocationRepository() ports.AllocationRepository
	}

	// CareRepoFactory provides access to the customer-care repository within a transaction.
	CareRepoFactory interface {
		CareRepository() ports.CareRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StockUoW manages transactions for ledger-only operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// OrderStockUoW manages transactions spanning the order aggregate and
	// the stock ledger. Used by ready-order creation and cancellation,
	// where the order mutation and its ledger reversal must be atomic.
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
	}

	// OrderStockUoWFactory creates new order+stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// StockAllocationUoW manages transactions spanning the stock ledger
	// and the daily allocation records. Used by pack-out and return, where
	// the allocation write and the ledger consume/restock must be atomic.
	StockAllocationUoW interface {
		TxManager
		StockRepoFactory
		AllocationRepoFactory
	}

	// StockAllocationUoWFactory creates new stock+allocation unit of work instances.
	StockAllocationUoWFactory interface {
		Create() StockAllocationUoW
	}

	// OrderAllocationUoW manages transactions spanning the order aggregate
	// and the daily allocation records. Used by delivery and baki
	// continuation, which merge sold quantities into both.
	OrderAllocationUoW interface {
		TxManager
		OrderRepoFactory
		AllocationRepoFactory
	}

	// OrderAllocationUoWFactory creates new order+allocation unit of work instances.
	OrderAllocationUoWFactory interface {
		Create() OrderAllocationUoW
	}

	// CareUoW manages transactions spanning customer-care tickets, the
	// order aggregate and the stock ledger. Ticket resolution may cancel
	// the underlying order, which restocks the ledger in the same
	// transaction.
	CareUoW interface {
		TxManager
		OrderRepoFactory
		CareRepoFactory
		StockRepoFactory
	}

	// CareUoWFactory creates new care unit of work instances.
	CareUoWFactory interface {
		Create() CareUoW
	}
)
