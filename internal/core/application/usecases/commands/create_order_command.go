package commands

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineSpec is one requested product line as it arrives from the outside:
// a resolved product reference and the ordered quantity in units. Pricing
// is derived from master data by the handlers, never taken from the caller.
type LineSpec struct {
	ProductID kernel.UUID
	Quantity  int
}

func validateLineSpecs(lines []LineSpec) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}

		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}

		if _, ok := seen[line.ProductID]; ok {
			return errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("product %s appears more than once", line.ProductID))
		}
		seen[line.ProductID] = struct{}{}
	}

	return nil
}

// CreateOrderCommand represents an agent's request to place a new order for
// a retailer. The order starts in Processing status awaiting dispatch
// unless the caller back-dates it with an explicit initial status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         Actor
	orderID       kernel.UUID
	retailerID    kernel.UUID
	areaID        kernel.UUID
	dealerID      kernel.UUID
	agentID       kernel.UUID
	lines         []LineSpec
	initialStatus *order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates all references and requires at least one line with a positive
// quantity. A nil initialStatus means the default Processing; a non-nil
// one must be a status the order aggregate accepts at creation.
func NewCreateOrderCommand(
	actor Actor,
	orderID kernel.UUID,
	retailerID kernel.UUID,
	areaID kernel.UUID,
	dealerID kernel.UUID,
	agentID kernel.UUID,
	lines []LineSpec,
	initialStatus *order.Status,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		retailerID.Validate(),
		areaID.Validate(),
		dealerID.Validate(),
		agentID.Validate(),
		validateLineSpecs(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if initialStatus != nil {
		if err := initialStatus.ValidateInitial(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		actor:         actor,
		orderID:       orderID,
		retailerID:    retailerID,
		areaID:        areaID,
		dealerID:      dealerID,
		agentID:       agentID,
		lines:         lines,
		initialStatus: initialStatus,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c CreateOrderCommand) Actor() Actor {
	return c.actor
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RetailerID returns the retailer the order is placed for.
func (c CreateOrderCommand) RetailerID() kernel.UUID {
	return c.retailerID
}

// AreaID returns the delivery area reference.
func (c CreateOrderCommand) AreaID() kernel.UUID {
	return c.areaID
}

// DealerID returns the dealer reference.
func (c CreateOrderCommand) DealerID() kernel.UUID {
	return c.dealerID
}

// AgentID returns the placing agent reference.
func (c CreateOrderCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Lines returns the requested product lines.
func (c CreateOrderCommand) Lines() []LineSpec {
	return c.lines
}

// InitialStatus returns the status the order starts in: Processing unless
// the command back-dated the entry with an explicit one.
func (c CreateOrderCommand) InitialStatus() order.Status {
	if c.initialStatus == nil {
		return order.StatusProcessing
	}
	return *c.initialStatus
}
