package commands

import (
	"context"
	"time"

	"distribution/internal/pkg/errs"
)

// UpdateOrderLineCommandHandler applies a line quantity edit. The line's
// totals are recomputed from its stored per-package prices; the agent
// variant also writes the negotiated agent price and refreshes the order's
// collection amount.
type UpdateOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderLineCommandHandler creates a handler for order line edits.
func NewUpdateOrderLineCommandHandler(uowFactory OrderUoWFactory) UpdateOrderLineCommandHandler {
	return UpdateOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line edit command.
func (h *UpdateOrderLineCommandHandler) Handle(ctx context.Context, cmd UpdateOrderLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("updateOrderLine", cmd.Actor()); err != nil {
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
	if cmd.Actor().Role() == RoleAgent {
		err = aggregate.UpdateLineQuantityByAgent(cmd.ProductID(), cmd.Quantity(), *cmd.AgentPrice(), now)
	} else {
		err = aggregate.UpdateLineQuantity(cmd.ProductID(), cmd.Quantity(), now)
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("updateOrderLine", err)
	}

	return nil
}
