package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrUpdateOrderLineCommandIsNotConstructed is returned when an
// UpdateOrderLineCommand was not created via its constructor.
var ErrUpdateOrderLineCommandIsNotConstructed = errors.New(
	"UpdateOrderLineCommand must be created via NewUpdateOrderLineCommand constructor",
)

// UpdateOrderLineCommand represents a quantity edit on one order line.
// The edit behaves differently per caller role: agents additionally set a
// negotiated agent price, which recomputes the order's collection amount;
// packers and delivery staff edit the quantity only.
type UpdateOrderLineCommand struct { //nolint:recvcheck //using for validation
	actor      Actor
	orderID    kernel.UUID
	productID  kernel.UUID
	quantity   int
	agentPrice *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateOrderLineCommand creates a command to edit an order line.
// agentPrice is required for Agent callers and forbidden for everyone else.
func NewUpdateOrderLineCommand(
	actor Actor,
	orderID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	agentPrice *decimal.Decimal,
) (UpdateOrderLineCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		productID.Validate(),
	); err != nil {
		return UpdateOrderLineCommand{}, err
	}

	if quantity <= 0 {
		return UpdateOrderLineCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if actor.Role() == RoleAgent && agentPrice == nil {
		return UpdateOrderLineCommand{}, errs.NewValueIsRequiredError("agentPrice")
	}

	if actor.Role() != RoleAgent && agentPrice != nil {
		return UpdateOrderLineCommand{}, errs.NewValueIsInvalidErrorWithCause("agentPrice",
			fmt.Errorf("only agents may set an agent price"))
	}

	if agentPrice != nil && agentPrice.IsNegative() {
		return UpdateOrderLineCommand{}, errs.NewValueIsInvalidErrorWithCause("agentPrice",
			fmt.Errorf("%s is negative", agentPrice))
	}

	return UpdateOrderLineCommand{
		actor:      actor,
		orderID:    orderID,
		productID:  productID,
		quantity:   quantity,
		agentPrice: agentPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderLineCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c UpdateOrderLineCommand) Actor() Actor {
	return c.actor
}

// OrderID returns the order to edit.
func (c UpdateOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product line to edit.
func (c UpdateOrderLineCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the new ordered quantity.
func (c UpdateOrderLineCommand) Quantity() int {
	return c.quantity
}

// AgentPrice returns the negotiated agent price, set only by Agent callers.
func (c UpdateOrderLineCommand) AgentPrice() *decimal.Decimal {
	return c.agentPrice
}
