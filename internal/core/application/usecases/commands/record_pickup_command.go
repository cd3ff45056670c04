package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrRecordPickupCommandIsNotConstructed is returned when a
// RecordPickupCommand was not created via its constructor.
var ErrRecordPickupCommandIsNotConstructed = errors.New(
	"RecordPickupCommand must be created via NewRecordPickupCommand constructor",
)

// RecordPickupCommand represents a dealer stock intake: quantity units of
// a product arriving at a warehouse at a given package price. The intake
// is logged as an immutable pickup event and raises the ledger counter.
type RecordPickupCommand struct { //nolint:recvcheck //using for validation
	actor       Actor
	dealerID    kernel.UUID
	warehouseID kernel.UUID
	productID   kernel.UUID
	quantity    int
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecordPickupCommand creates a command to record a stock intake.
func NewRecordPickupCommand(
	actor Actor,
	dealerID kernel.UUID,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	price decimal.Decimal,
) (RecordPickupCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		dealerID.Validate(),
		warehouseID.Validate(),
		productID.Validate(),
	); err != nil {
		return RecordPickupCommand{}, err
	}

	if quantity <= 0 {
		return RecordPickupCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if price.IsNegative() {
		return RecordPickupCommand{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	return RecordPickupCommand{
		actor:       actor,
		dealerID:    dealerID,
		warehouseID: warehouseID,
		productID:   productID,
		quantity:    quantity,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPickupCommand) Validate() error {
	return c.guard.Validate(ErrRecordPickupCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c RecordPickupCommand) Actor() Actor {
	return c.actor
}

// DealerID returns the dealer whose stock arrived.
func (c RecordPickupCommand) DealerID() kernel.UUID {
	return c.dealerID
}

// WarehouseID returns the receiving warehouse.
func (c RecordPickupCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ProductID returns the product picked up.
func (c RecordPickupCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the intake quantity in units.
func (c RecordPickupCommand) Quantity() int {
	return c.quantity
}

// Price returns the package price at intake.
func (c RecordPickupCommand) Price() decimal.Decimal {
	return c.price
}
