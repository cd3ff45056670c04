package commands

import (
	"context"
	"time"

	"distribution/internal/pkg/errs"
)

// ContinueBakiOrderCommandHandler applies a partial-collection follow-up.
// The order's collected amount accumulates and its status and payment
// status are recomputed from the thresholds: Delivered/Paid when the
// collection completes, Baki/PartialPaid while a remainder is outstanding.
type ContinueBakiOrderCommandHandler struct {
	uowFactory OrderAllocationUoWFactory
}

// NewContinueBakiOrderCommandHandler creates a handler for baki continuation.
func NewContinueBakiOrderCommandHandler(uowFactory OrderAllocationUoWFactory) ContinueBakiOrderCommandHandler {
	return ContinueBakiOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the continuation command.
func (h *ContinueBakiOrderCommandHandler) Handle(ctx context.Context, cmd ContinueBakiOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("continueBakiOrder", cmd.Actor()); err != nil {
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
	deltas, err := aggregate.ContinueBaki(
		cmd.Actor().ID(),
		cmd.CollectedDelta(),
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
		return errs.NewTransactionFailedError("continueBakiOrder", err)
	}

	return nil
}
