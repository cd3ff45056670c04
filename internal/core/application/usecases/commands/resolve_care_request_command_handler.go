package commands

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/pkg/errs"
)

// ResolveCareRequestCommandHandler closes a care follow-up. A NotInterest
// outcome on a Pending ticket cancels the underlying order and restocks
// the ledger in the same transaction; Baki tickets are annotated only
// because money has already been collected on them.
type ResolveCareRequestCommandHandler struct {
	uowFactory CareUoWFactory
}

// NewResolveCareRequestCommandHandler creates a handler for ticket resolution.
func NewResolveCareRequestCommandHandler(uowFactory CareUoWFactory) ResolveCareRequestCommandHandler {
	return ResolveCareRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
func (h *ResolveCareRequestCommandHandler) Handle(ctx context.Context, cmd ResolveCareRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("resolveCareRequest", cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	careRepo := uow.CareRepository()
	ticket, err := careRepo.Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	now := time.Now()
	switch cmd.Resolution() {
	case carecase.TicketStatusInterest:
		err = ticket.MarkInterest(*cmd.RequestDate(), now)
	case carecase.TicketStatusNotReach:
		err = ticket.MarkNotReach(now)
	case carecase.TicketStatusNotInterest:
		var cancelOrder bool
		if cancelOrder, err = ticket.MarkNotInterest(cmd.Reason(), now); err == nil && cancelOrder {
			err = h.cancelUnderlyingOrder(ctx, uow, cmd, ticket, now)
		}
	}
	if err != nil {
		return err
	}

	if err = careRepo.Update(ctx, ticket); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("resolveCareRequest", err)
	}

	return nil
}

// cancelUnderlyingOrder cancels the ticket's order and returns each line's
// ordered quantity to the warehouse ledger.
func (h *ResolveCareRequestCommandHandler) cancelUnderlyingOrder(
	ctx context.Context,
	uow CareUoW,
	cmd ResolveCareRequestCommand,
	ticket *carecase.Ticket,
	now time.Time,
) error {
	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, ticket.OrderID())
	if err != nil {
		return err
	}

	restocks, err := aggregate.Cancel(cmd.Actor().ID(), cmd.Reason(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	for _, restock := range restocks {
		if err = stockRepo.Restock(ctx, *cmd.WarehouseID(), restock.ProductID, restock.Quantity); err != nil {
			return err
		}
	}

	return nil
}
