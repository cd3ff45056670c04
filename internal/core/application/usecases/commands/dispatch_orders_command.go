package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrDispatchOrdersCommandIsNotConstructed is returned when a
// DispatchOrdersCommand was not created via its constructor.
var ErrDispatchOrdersCommandIsNotConstructed = errors.New(
	"DispatchOrdersCommand must be created via NewDispatchOrdersCommand constructor",
)

// DispatchOrdersCommand represents a packer handing a batch of processed
// orders to a delivery staff. Pure status metadata update; stock moves
// through the pack-out flow, not here.
type DispatchOrdersCommand struct { //nolint:recvcheck //using for validation
	actor           Actor
	orderIDs        []kernel.UUID
	deliveryStaffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchOrdersCommand creates a command to dispatch a batch of orders
// to one delivery staff.
func NewDispatchOrdersCommand(
	actor Actor,
	orderIDs []kernel.UUID,
	deliveryStaffID kernel.UUID,
) (DispatchOrdersCommand, error) {
	joined := []error{
		actor.Validate(),
		deliveryStaffID.Validate(),
	}
	for _, id := range orderIDs {
		joined = append(joined, id.Validate())
	}
	if err := errors.Join(joined...); err != nil {
		return DispatchOrdersCommand{}, err
	}

	if len(orderIDs) == 0 {
		return DispatchOrdersCommand{}, errs.NewValueIsRequiredError("orderIDs")
	}

	return DispatchOrdersCommand{
		actor:           actor,
		orderIDs:        orderIDs,
		deliveryStaffID: deliveryStaffID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrdersCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c DispatchOrdersCommand) Actor() Actor {
	return c.actor
}

// OrderIDs returns the batch of orders to dispatch.
func (c DispatchOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// DeliveryStaffID returns the staff the batch is assigned to.
func (c DispatchOrdersCommand) DeliveryStaffID() kernel.UUID {
	return c.deliveryStaffID
}
