package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrContinueBakiOrderCommandIsNotConstructed is returned when a
// ContinueBakiOrderCommand was not created via its constructor.
var ErrContinueBakiOrderCommandIsNotConstructed = errors.New(
	"ContinueBakiOrderCommand must be created via NewContinueBakiOrderCommand constructor",
)

// ContinueBakiOrderCommand represents a follow-up collection run on an
// order with an outstanding remainder. The collected delta accumulates on
// the order; extra goods handed over on the run are optional.
type ContinueBakiOrderCommand struct { //nolint:recvcheck //using for validation
	actor               Actor
	orderID             kernel.UUID
	collectedDelta      decimal.Decimal
	deliveredQuantities map[string]int

	guard guard.ConstructorGuard
}

// NewContinueBakiOrderCommand creates a command to record a follow-up
// collection. deliveredQuantities may be empty when the run collects money
// only.
func NewContinueBakiOrderCommand(
	actor Actor,
	orderID kernel.UUID,
	collectedDelta decimal.Decimal,
	deliveredQuantities map[string]int,
) (ContinueBakiOrderCommand, error) {
	joined := []error{
		actor.Validate(),
		orderID.Validate(),
	}
	if len(deliveredQuantities) > 0 {
		joined = append(joined, validateDeliveredQuantities(deliveredQuantities))
	}
	if err := errors.Join(joined...); err != nil {
		return ContinueBakiOrderCommand{}, err
	}

	if collectedDelta.IsNegative() {
		return ContinueBakiOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("collectedDelta",
			fmt.Errorf("%s is negative", collectedDelta))
	}

	return ContinueBakiOrderCommand{
		actor:               actor,
		orderID:             orderID,
		collectedDelta:      collectedDelta,
		deliveredQuantities: deliveredQuantities,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ContinueBakiOrderCommand) Validate() error {
	return c.guard.Validate(ErrContinueBakiOrderCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c ContinueBakiOrderCommand) Actor() Actor {
	return c.actor
}

// OrderID returns the order being continued.
func (c ContinueBakiOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CollectedDelta returns the amount collected on this run.
func (c ContinueBakiOrderCommand) CollectedDelta() decimal.Decimal {
	return c.collectedDelta
}

// DeliveredQuantities returns the extra units handed over, if any.
func (c ContinueBakiOrderCommand) DeliveredQuantities() map[string]int {
	return c.deliveredQuantities
}
