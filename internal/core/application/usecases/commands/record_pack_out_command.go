package commands

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/allocation"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrRecordPackOutCommandIsNotConstructed is returned when a
// RecordPackOutCommand was not created via its constructor.
var ErrRecordPackOutCommandIsNotConstructed = errors.New(
	"RecordPackOutCommand must be created via NewRecordPackOutCommand constructor",
)

// RecordPackOutCommand represents a packer handing stock to a delivery
// staff for the day. The mode selects the bookkeeping: Replace stores the
// latest out quantity and reconciles the ledger by the difference,
// Accumulate adds to the running total and consumes exactly that much.
type RecordPackOutCommand struct { //nolint:recvcheck //using for validation
	actor           Actor
	warehouseID     kernel.UUID
	productID       kernel.UUID
	deliveryStaffID kernel.UUID
	dealerID        kernel.UUID
	day             kernel.Day
	outQuantity     int
	mode            allocation.Mode

	guard guard.ConstructorGuard
}

// NewRecordPackOutCommand creates a command to record a daily pack-out.
func NewRecordPackOutCommand(
	actor Actor,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	deliveryStaffID kernel.UUID,
	dealerID kernel.UUID,
	day kernel.Day,
	outQuantity int,
	mode allocation.Mode,
) (RecordPackOutCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		warehouseID.Validate(),
		productID.Validate(),
		deliveryStaffID.Validate(),
		dealerID.Validate(),
		day.Validate(),
		mode.Validate(),
	); err != nil {
		return RecordPackOutCommand{}, err
	}

	if outQuantity <= 0 {
		return RecordPackOutCommand{}, errs.NewValueIsInvalidErrorWithCause("outQuantity",
			fmt.Errorf("%d is not greater than 0", outQuantity))
	}

	return RecordPackOutCommand{
		actor:           actor,
		warehouseID:     warehouseID,
		productID:       productID,
		deliveryStaffID: deliveryStaffID,
		dealerID:        dealerID,
		day:             day,
		outQuantity:     outQuantity,
		mode:            mode,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPackOutCommand) Validate() error {
	return c.guard.Validate(ErrRecordPackOutCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c RecordPackOutCommand) Actor() Actor {
	return c.actor
}

// WarehouseID returns the warehouse the stock leaves.
func (c RecordPackOutCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ProductID returns the packed product.
func (c RecordPackOutCommand) ProductID() kernel.UUID {
	return c.productID
}

// DeliveryStaffID returns the staff receiving the stock.
func (c RecordPackOutCommand) DeliveryStaffID() kernel.UUID {
	return c.deliveryStaffID
}

// DealerID returns the dealer owning the stock.
func (c RecordPackOutCommand) DealerID() kernel.UUID {
	return c.dealerID
}

// Day returns the allocation day.
func (c RecordPackOutCommand) Day() kernel.Day {
	return c.day
}

// OutQuantity returns the packed quantity in units.
func (c RecordPackOutCommand) OutQuantity() int {
	return c.outQuantity
}

// Mode returns the pack-out bookkeeping mode.
func (c RecordPackOutCommand) Mode() allocation.Mode {
	return c.mode
}
