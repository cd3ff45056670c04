package commands

import (
	"context"

	"distribution/internal/pkg/errs"
)

// MarkReturnedCommandHandler closes out a daily allocation record, putting
// the unsold remainder (outQuantity - sellQuantity) back into the warehouse
// ledger in the same transaction.
type MarkReturnedCommandHandler struct {
	uowFactory StockAllocationUoWFactory
}

// NewMarkReturnedCommandHandler creates a handler for end-of-day returns.
func NewMarkReturnedCommandHandler(uowFactory StockAllocationUoWFactory) MarkReturnedCommandHandler {
	return MarkReturnedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return command.
func (h *MarkReturnedCommandHandler) Handle(ctx context.Context, cmd MarkReturnedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("markReturned", cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	allocationRepo := uow.AllocationRepository()
	record, err := allocationRepo.Get(ctx, cmd.WarehouseID(), cmd.ProductID(), cmd.PackerID(), cmd.Day())
	if err != nil {
		return err
	}

	remainder, err := record.MarkReturned()
	if err != nil {
		return err
	}

	if err = allocationRepo.Update(ctx, record); err != nil {
		return err
	}

	if remainder > 0 {
		if err = uow.StockRepository().Restock(ctx, cmd.WarehouseID(), cmd.ProductID(), remainder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("markReturned", err)
	}

	return nil
}
