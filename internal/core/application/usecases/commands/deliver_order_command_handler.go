package commands

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
)

// DeliverOrderCommandHandler closes an order as Delivered/Paid and feeds
// the sold deltas into the day's inventory allocation of the delivering
// staff. Order update and allocation upserts share one transaction; a
// failing allocation write rolls the delivery back.
type DeliverOrderCommandHandler struct {
	uowFactory OrderAllocationUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(uowFactory OrderAllocationUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command. Only the order's assigned staff
// may deliver it; the aggregate rejects anyone else with Forbidden.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("deliverOrder", cmd.Actor()); err != nil {
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

	now := time.Now()
	deltas, err := aggregate.Deliver(
		cmd.Actor().ID(),
		cmd.CollectionAmount(),
		cmd.CollectedAmount(),
		cmd.DeliveredQuantities(),
		now,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = applySoldDeltas(ctx, uow, cmd.Actor().ID(), deltas, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("deliverOrder", err)
	}

	return nil
}

// applySoldDeltas increments sellQuantity for every non-zero sold delta
// against the delivering staff's allocation records. The repository
// resolves each sale to the staff's most recent open record for the
// product, so stock packed out on an earlier day still reconciles. A
// staff with no open record at all never received the product; that
// surfaces as NotFound and rolls everything back.
func applySoldDeltas(
	ctx context.Context,
	uow OrderAllocationUoW,
	deliveryStaffID kernel.UUID,
	deltas []order.SoldDelta,
	at time.Time,
) error {
	allocationRepo := uow.AllocationRepository()
	day := kernel.DayOf(at)

	for _, delta := range deltas {
		if delta.Delta == 0 {
			continue
		}

		record, err := allocationRepo.GetForSale(ctx, deliveryStaffID, delta.ProductID, day)
		if err != nil {
			return err
		}

		if err = record.AddSale(delta.Delta); err != nil {
			return err
		}

		if err = allocationRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	return nil
}
