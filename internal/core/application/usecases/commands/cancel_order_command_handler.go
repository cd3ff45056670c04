package commands

import (
	"context"
	"time"

	"distribution/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and reverses its stock. Each
// line's ordered quantity goes back into the warehouse ledger counter, the
// single authoritative stock figure, in the same transaction as the status
// change.
type CancelOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderStockUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("cancelOrder", cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	restocks, err := aggregate.Cancel(cmd.Actor().ID(), cmd.Reason(), time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	for _, restock := range restocks {
		if err = stockRepo.Restock(ctx, cmd.WarehouseID(), restock.ProductID, restock.Quantity); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("cancelOrder", err)
	}

	return nil
}
