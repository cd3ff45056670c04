package commands

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/services"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Resolves master data through the directory, derives line pricing and
// persists the order in the command's initial status, Processing unless
// the entry is back-dated.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	directory  ports.Directory
	pricing    services.PricingCalculator
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// Requires an OrderUoWFactory for transactional persistence and a
// Directory for master-data resolution.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, directory ports.Directory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		pricing:    services.NewPricingCalculator(),
	}
}

// Handle processes the order intake command.
// The business id is derived from the retailer, dealer and agent codes
// plus the creation instant, and the collection amount from the summed
// agent line totals.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize("createOrder", cmd.Actor()); err != nil {
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

	agent, err := h.directory.Agent(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if _, err = h.directory.Area(ctx, cmd.AreaID()); err != nil {
		return err
	}

	now := time.Now()

	lines, err := buildOrderLines(ctx, h.directory, h.pricing, cmd.Lines(), dealer, agent, false)
	if err != nil {
		return err
	}

	agentID := cmd.AgentID()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		order.NewBusinessID(retailer.Code, dealer.Code, agent.Code, now),
		order.References{
			RetailerID: cmd.RetailerID(),
			AreaID:     cmd.AreaID(),
			DealerID:   cmd.DealerID(),
			AgentID:    &agentID,
		},
		lines,
		cmd.InitialStatus(),
		now,
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransactionFailedError("createOrder", err)
	}

	return nil
}

// buildOrderLines resolves each requested product and derives its pricing
// from the product's package price and the dealer/agent commissions. Shared
// by regular and ready order intake.
func buildOrderLines(
	ctx context.Context,
	directory ports.Directory,
	calculator services.PricingCalculator,
	specs []LineSpec,
	dealer ports.DealerInfo,
	agent ports.AgentInfo,
	soldAtCreation bool,
) ([]*order.LineItem, error) {
	lines := make([]*order.LineItem, 0, len(specs))
	for _, spec := range specs {
		product, err := directory.Product(ctx, spec.ProductID)
		if err != nil {
			return nil, err
		}

		pricing, err := calculator.Calculate(
			product.Price,
			product.QuantityPerPackage,
			spec.Quantity,
			dealer.CommissionPct,
			agent.CommissionPct,
		)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLineItem(
			spec.ProductID,
			spec.Quantity,
			product.QuantityPerPackage,
			order.LinePrices{
				Price:             pricing.Price,
				DealerPrice:       pricing.DealerPrice,
				AgentPrice:        pricing.AgentPrice,
				TotalAmount:       pricing.TotalAmount,
				DealerTotalAmount: pricing.DealerTotalAmount,
				AgentTotalAmount:  pricing.AgentTotalAmount,
			},
			soldAtCreation,
		)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
