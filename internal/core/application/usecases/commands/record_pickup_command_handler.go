package commands

import (
	"context"
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/stock"
	"distribution/internal/pkg/errs"
)

// RecordPickupCommandHandler records a dealer stock intake. The immutable
// pickup event and the ledger counter upsert happen in one transaction, so
// the event log can always replay to the counter's value.
type RecordPickupCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewRecordPickupCommandHandler creates a handler for stock intake.
func NewRecordPickupCommandHandler(uowFactory StockUoWFactory) RecordPickupCommandHandler {
	return RecordPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command. A first pickup for a
// (warehouse, product) pair creates the counter; later pickups raise it
// and refresh the stored price.
func (h *RecordPickupCommandHandler) Handle(ctx context.Context, cmd RecordPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("recordPickup", cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()

	previousQuantity := 0
	item, err := stockRepo.Get(ctx, cmd.WarehouseID(), cmd.ProductID())
	switch {
	case err == nil:
		previousQuantity = item.Quantity()
		if err = item.Reset(previousQuantity+cmd.Quantity(), cmd.Price()); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		if item, err = stock.NewItem(cmd.WarehouseID(), cmd.ProductID(), cmd.Quantity(), cmd.Price()); err != nil {
			return err
		}
	default:
		return err
	}

	if err = stockRepo.Upsert(ctx, item); err != nil {
		return err
	}

	event, err := stock.NewPickupEvent(
		kernel.NewUUID(),
		cmd.DealerID(),
		cmd.Actor().ID(),
		cmd.WarehouseID(),
		cmd.ProductID(),
		previousQuantity,
		item.Quantity(),
		cmd.Quantity(),
		cmd.Price(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = stockRepo.AddPickupEvent(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("recordPickup", err)
	}

	return nil
}
