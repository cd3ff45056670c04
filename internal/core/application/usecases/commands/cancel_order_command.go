package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrCancelOrderCommandIsNotConstructed is returned when a
// CancelOrderCommand was not created via its constructor.
var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order. Every line's
// ordered quantity is returned to the warehouse stock ledger in the same
// transaction.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actor       Actor
	orderID     kernel.UUID
	warehouseID kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order with a reason.
func NewCancelOrderCommand(
	actor Actor,
	orderID kernel.UUID,
	warehouseID kernel.UUID,
	reason string,
) (CancelOrderCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		warehouseID.Validate(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	if reason == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return CancelOrderCommand{
		actor:       actor,
		orderID:     orderID,
		warehouseID: warehouseID,
		reason:      reason,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c CancelOrderCommand) Actor() Actor {
	return c.actor
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WarehouseID returns the warehouse whose ledger receives the restock.
func (c CancelOrderCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}
