package commands

import (
	"context"
	"errors"
	"time"

	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// FileCareRequestCommandHandler files a customer-care intake. The order's
// status change and the ticket upsert share one transaction; exactly one
// ticket ever exists per order, a repeat intake refiles it.
type FileCareRequestCommandHandler struct {
	uowFactory CareUoWFactory
}

// NewFileCareRequestCommandHandler creates a handler for care intake.
func NewFileCareRequestCommandHandler(uowFactory CareUoWFactory) FileCareRequestCommandHandler {
	return FileCareRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command.
func (h *FileCareRequestCommandHandler) Handle(ctx context.Context, cmd FileCareRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("fileCareRequest", cmd.Actor()); err != nil {
		return err
	}

	targetStatus, err := cmd.RequestType().OrderStatus()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
	if err = aggregate.RouteCare(targetStatus, now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	careRepo := uow.CareRepository()
	ticket, err := careRepo.GetByOrderID(ctx, cmd.OrderID())
	switch {
	case err == nil:
		if err = ticket.Refile(cmd.RequestType(), cmd.DeliveryStaffID(), cmd.Reason(), now); err != nil {
			return err
		}

		if err = careRepo.Update(ctx, ticket); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		ticket, err = carecase.NewTicket(
			kernel.NewUUID(),
			cmd.OrderID(),
			aggregate.References().RetailerID,
			cmd.DeliveryStaffID(),
			cmd.RequestType(),
			cmd.Reason(),
			now,
		)
		if err != nil {
			return err
		}

		if err = careRepo.Add(ctx, ticket); err != nil {
			return err
		}
	default:
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("fileCareRequest", err)
	}

	return nil
}
