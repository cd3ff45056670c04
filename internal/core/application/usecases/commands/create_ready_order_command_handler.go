package commands

import (
	"context"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/services"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"
)

// CreateReadyOrderCommandHandler handles on-the-spot sales. The ledger
// consume for every sold line and the order insert share one transaction,
// so an insufficient counter on any line leaves no trace of the order.
type CreateReadyOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
	directory  ports.Directory
	pricing    services.PricingCalculator
}

// NewCreateReadyOrderCommandHandler creates a handler for ready-order intake.
func NewCreateReadyOrderCommandHandler(
	uowFactory OrderStockUoWFactory,
	directory ports.Directory,
) CreateReadyOrderCommandHandler {
	return CreateReadyOrderCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		pricing:    services.NewPricingCalculator(),
	}
}

// Handle processes the ready-order command. The caller is stamped as the
// order's assigned delivery staff, the initial status derives from the
// collected amount (Delivered when complete, Baki otherwise) and each sold
// line is consumed from the warehouse ledger with a conditional decrement.
func (h *CreateReadyOrderCommandHandler) Handle(ctx context.Context, cmd CreateReadyOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("createReadyOrder", cmd.Actor()); err != nil {
		return err
	}

	retailer, err := h.directory.Retailer(ctx, cmd.RetailerID())
	if err != nil {
		return err
	}

	dealer, err := h.directory.Dealer(ctx, cmd.DealerID())
	if err != nil {
		return err
	}

	// Sales without an agent carry no commission on the agent price.
	agent := ports.AgentInfo{CommissionPct: decimal.Zero}
	if cmd.AgentID() != nil {
		if agent, err = h.directory.Agent(ctx, *cmd.AgentID()); err != nil {
			return err
		}
	}

	if _, err = h.directory.Warehouse(ctx, cmd.WarehouseID()); err != nil {
		return err
	}

	lines, err := buildOrderLines(ctx, h.directory, h.pricing, cmd.Lines(), dealer, agent, true)
	if err != nil {
		return err
	}

	staffID := cmd.Actor().ID()
	aggregate, err := order.NewReadyOrder(
		cmd.OrderID(),
		order.NewBusinessID(retailer.Code, dealer.Code, agent.Code, cmd.SoldAt()),
		order.References{
			RetailerID:      cmd.RetailerID(),
			AreaID:          cmd.AreaID(),
			DealerID:        cmd.DealerID(),
			AgentID:         cmd.AgentID(),
			DeliveryStaffID: &staffID,
		},
		lines,
		cmd.CollectedAmount(),
		cmd.SoldAt(),
	)
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

	stockRepo := uow.StockRepository()
	for _, line := range cmd.Lines() {
		if err = stockRepo.Consume(ctx, cmd.WarehouseID(), line.ProductID, line.Quantity); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("createReadyOrder", err)
	}

	return nil
}
