package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

// ErrMarkReturnedCommandIsNotConstructed is returned when a
// MarkReturnedCommand was not created via its constructor.
var ErrMarkReturnedCommandIsNotConstructed = errors.New(
	"MarkReturnedCommand must be created via NewMarkReturnedCommand constructor",
)

// MarkReturnedCommand represents the end-of-day return of a delivery
// staff's unsold stock to the warehouse.
type MarkReturnedCommand struct { //nolint:recvcheck //using for validation
	actor       Actor
	warehouseID kernel.UUID
	productID   kernel.UUID
	packerID    kernel.UUID
	day         kernel.Day

	guard guard.ConstructorGuard
}

// NewMarkReturnedCommand creates a command to close out a daily record.
// packerID identifies the record; the actor performing the return may be a
// different packer on the evening shift.
func NewMarkReturnedCommand(
	actor Actor,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	packerID kernel.UUID,
	day kernel.Day,
) (MarkReturnedCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		warehouseID.Validate(),
		productID.Validate(),
		packerID.Validate(),
		day.Validate(),
	); err != nil {
		return MarkReturnedCommand{}, err
	}

	return MarkReturnedCommand{
		actor:       actor,
		warehouseID: warehouseID,
		productID:   productID,
		packerID:    packerID,
		day:         day,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReturnedCommand) Validate() error {
	return c.guard.Validate(ErrMarkReturnedCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c MarkReturnedCommand) Actor() Actor {
	return c.actor
}

// WarehouseID returns the warehouse receiving the remainder.
func (c MarkReturnedCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ProductID returns the returned product.
func (c MarkReturnedCommand) ProductID() kernel.UUID {
	return c.productID
}

// PackerID returns the packer who made the morning pack-out.
func (c MarkReturnedCommand) PackerID() kernel.UUID {
	return c.packerID
}

// Day returns the allocation day being closed out.
func (c MarkReturnedCommand) Day() kernel.Day {
	return c.day
}
