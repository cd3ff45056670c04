package commands

import (
	"context"
	"time"

	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"
)

// DispatchOrdersCommandHandler transitions a batch of orders to Dispatched,
// stamping the assigned delivery staff and the dispatching packer. The
// batch is all-or-nothing: one bad order rolls back the whole dispatch.
type DispatchOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	directory  ports.Directory
}

// NewDispatchOrdersCommandHandler creates a handler for order dispatch.
func NewDispatchOrdersCommandHandler(uowFactory OrderUoWFactory, directory ports.Directory) DispatchOrdersCommandHandler {
	return DispatchOrdersCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the dispatch command.
func (h *DispatchOrdersCommandHandler) Handle(ctx context.Context, cmd DispatchOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("dispatchOrders", cmd.Actor()); err != nil {
		return err
	}

	if _, err := h.directory.DeliveryStaff(ctx, cmd.DeliveryStaffID()); err != nil {
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
	aggregates, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return err
	}

	now := time.Now()
	for _, aggregate := range aggregates {
		if err = aggregate.Dispatch(cmd.DeliveryStaffID(), cmd.Actor().ID(), now); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("dispatchOrders", err)
	}

	return nil
}
