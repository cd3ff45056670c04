package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrCreateReadyOrderCommandIsNotConstructed is returned when a
// CreateReadyOrderCommand was not created via its constructor.
var ErrCreateReadyOrderCommandIsNotConstructed = errors.New(
	"CreateReadyOrderCommand must be created via NewCreateReadyOrderCommand constructor",
)

// CreateReadyOrderCommand represents an on-the-spot sale made by delivery
// staff from the stock they carry. The sold quantities are consumed from
// the warehouse ledger atomically with the order creation; if any line
// lacks stock the whole operation fails and no order is persisted.
type CreateReadyOrderCommand struct { //nolint:recvcheck //using for validation
	actor       Actor
	orderID     kernel.UUID
	retailerID  kernel.UUID
	areaID      kernel.UUID
	dealerID    kernel.UUID
	agentID     *kernel.UUID
	warehouseID kernel.UUID
	lines       []LineSpec

	collectedAmount decimal.Decimal
	soldAt          time.Time

	guard guard.ConstructorGuard
}

// NewCreateReadyOrderCommand creates a command to register an on-the-spot
// sale. agentID is optional; soldAt allows back-dated entry of sales made
// in the field earlier that day.
func NewCreateReadyOrderCommand(
	actor Actor,
	orderID kernel.UUID,
	retailerID kernel.UUID,
	areaID kernel.UUID,
	dealerID kernel.UUID,
	agentID *kernel.UUID,
	warehouseID kernel.UUID,
	lines []LineSpec,
	collectedAmount decimal.Decimal,
	soldAt time.Time,
) (CreateReadyOrderCommand, error) {
	joined := []error{
		actor.Validate(),
		orderID.Validate(),
		retailerID.Validate(),
		areaID.Validate(),
		dealerID.Validate(),
		warehouseID.Validate(),
		validateLineSpecs(lines),
	}
	if agentID != nil {
		joined = append(joined, agentID.Validate())
	}
	if err := errors.Join(joined...); err != nil {
		return CreateReadyOrderCommand{}, err
	}

	if collectedAmount.IsNegative() {
		return CreateReadyOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("collectedAmount",
			fmt.Errorf("%s is negative", collectedAmount))
	}

	if soldAt.IsZero() {
		return CreateReadyOrderCommand{}, errs.NewValueIsRequiredError("soldAt")
	}

	return CreateReadyOrderCommand{
		actor:           actor,
		orderID:         orderID,
		retailerID:      retailerID,
		areaID:          areaID,
		dealerID:        dealerID,
		agentID:         agentID,
		warehouseID:     warehouseID,
		lines:           lines,
		collectedAmount: collectedAmount,
		soldAt:          soldAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReadyOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateReadyOrderCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c CreateReadyOrderCommand) Actor() Actor {
	return c.actor
}

// OrderID returns the unique identifier for the new order.
func (c CreateReadyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RetailerID returns the retailer the sale was made to.
func (c CreateReadyOrderCommand) RetailerID() kernel.UUID {
	return c.retailerID
}

// AreaID returns the delivery area reference.
func (c CreateReadyOrderCommand) AreaID() kernel.UUID {
	return c.areaID
}

// DealerID returns the dealer reference.
func (c CreateReadyOrderCommand) DealerID() kernel.UUID {
	return c.dealerID
}

// AgentID returns the optional agent reference.
func (c CreateReadyOrderCommand) AgentID() *kernel.UUID {
	return c.agentID
}

// WarehouseID returns the warehouse whose ledger the sale consumes.
func (c CreateReadyOrderCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Lines returns the sold product lines.
func (c CreateReadyOrderCommand) Lines() []LineSpec {
	return c.lines
}

// CollectedAmount returns the money taken at the door.
func (c CreateReadyOrderCommand) CollectedAmount() decimal.Decimal {
	return c.collectedAmount
}

// SoldAt returns the instant the sale was made.
func (c CreateReadyOrderCommand) SoldAt() time.Time {
	return c.soldAt
}
