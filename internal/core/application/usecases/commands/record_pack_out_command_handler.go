package commands

import (
	"context"
	"errors"

	"distribution/internal/core/domain/model/allocation"
	"distribution/internal/pkg/errs"
)

// RecordPackOutCommandHandler records a daily pack-out and reconciles the
// warehouse ledger in the same transaction. The ledger consume is a
// conditional decrement, so packing out more than the counter holds fails
// with InsufficientStock and leaves both sides untouched.
type RecordPackOutCommandHandler struct {
	uowFactory StockAllocationUoWFactory
}

// NewRecordPackOutCommandHandler creates a handler for daily pack-out.
func NewRecordPackOutCommandHandler(uowFactory StockAllocationUoWFactory) RecordPackOutCommandHandler {
	return RecordPackOutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pack-out command. The first pack-out of the day for
// a (warehouse, product, packer) key creates the record; later ones apply
// the command's mode against it.
func (h *RecordPackOutCommandHandler) Handle(ctx context.Context, cmd RecordPackOutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("recordPackOut", cmd.Actor()); err != nil {
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

	var ledgerDelta int
	record, err := allocationRepo.Get(ctx, cmd.WarehouseID(), cmd.ProductID(), cmd.Actor().ID(), cmd.Day())
	switch {
	case err == nil:
		if ledgerDelta, err = record.ApplyPackOut(cmd.Mode(), cmd.OutQuantity()); err != nil {
			return err
		}

		if err = allocationRepo.Update(ctx, record); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		record, err = allocation.NewDailyRecord(
			cmd.Actor().ID(),
			cmd.DeliveryStaffID(),
			cmd.WarehouseID(),
			cmd.ProductID(),
			cmd.DealerID(),
			cmd.Day(),
			cmd.OutQuantity(),
		)
		if err != nil {
			return err
		}

		ledgerDelta = cmd.OutQuantity()
		if err = allocationRepo.Add(ctx, record); err != nil {
			return err
		}
	default:
		return err
	}

	stockRepo := uow.StockRepository()
	switch {
	case ledgerDelta > 0:
		err = stockRepo.Consume(ctx, cmd.WarehouseID(), cmd.ProductID(), ledgerDelta)
	case ledgerDelta < 0:
		err = stockRepo.Restock(ctx, cmd.WarehouseID(), cmd.ProductID(), -ledgerDelta)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("recordPackOut", err)
	}

	return nil
}
