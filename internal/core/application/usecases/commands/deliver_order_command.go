package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrDeliverOrderCommandIsNotConstructed is returned when a
// DeliverOrderCommand was not created via its constructor.
var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

func validateDeliveredQuantities(deliveredQuantities map[string]int) error {
	if len(deliveredQuantities) == 0 {
		return errs.NewValueIsRequiredError("deliveredQuantities")
	}

	for productID, quantity := range deliveredQuantities {
		if _, err := kernel.UUIDFromString(productID); err != nil {
			return err
		}

		if quantity < 0 {
			return errs.NewValueIsInvalidErrorWithCause("deliveredQuantity",
				fmt.Errorf("%d for product %s is negative", quantity, productID))
		}
	}

	return nil
}

// DeliverOrderCommand represents the assigned delivery staff closing an
// order at the retailer's door with full collection.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	actor               Actor
	orderID             kernel.UUID
	collectionAmount    decimal.Decimal
	collectedAmount     decimal.Decimal
	deliveredQuantities map[string]int

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to record a full delivery.
// deliveredQuantities maps product ids to the units actually handed over,
// which may differ from the ordered quantities.
func NewDeliverOrderCommand(
	actor Actor,
	orderID kernel.UUID,
	collectionAmount decimal.Decimal,
	collectedAmount decimal.Decimal,
	deliveredQuantities map[string]int,
) (DeliverOrderCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		validateDeliveredQuantities(deliveredQuantities),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	if collectionAmount.IsNegative() || collectedAmount.IsNegative() {
		return DeliverOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("amounts must not be negative (collection=%s, collected=%s)",
				collectionAmount, collectedAmount))
	}

	return DeliverOrderCommand{
		actor:               actor,
		orderID:             orderID,
		collectionAmount:    collectionAmount,
		collectedAmount:     collectedAmount,
		deliveredQuantities: deliveredQuantities,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c DeliverOrderCommand) Actor() Actor {
	return c.actor
}

// OrderID returns the order being delivered.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CollectionAmount returns the amount due, as settled at the door.
func (c DeliverOrderCommand) CollectionAmount() decimal.Decimal {
	return c.collectionAmount
}

// CollectedAmount returns the amount actually collected.
func (c DeliverOrderCommand) CollectedAmount() decimal.Decimal {
	return c.collectedAmount
}

// DeliveredQuantities returns the handed-over units per product id.
func (c DeliverOrderCommand) DeliveredQuantities() map[string]int {
	return c.deliveredQuantities
}
