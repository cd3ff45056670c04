package commands

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrResolveCareRequestCommandIsNotConstructed is returned when a
// ResolveCareRequestCommand was not created via its constructor.
var ErrResolveCareRequestCommandIsNotConstructed = errors.New(
	"ResolveCareRequestCommand must be created via NewResolveCareRequestCommand constructor",
)

// ResolveCareRequestCommand represents the care desk closing a follow-up
// call. The resolution is the ticket status the call ended in: Interest
// stamps a follow-up day for the collection run, NotInterest on a Pending
// ticket cancels the underlying order, NotReach leaves the order for a
// later attempt.
type ResolveCareRequestCommand struct { //nolint:recvcheck //using for validation
	actor       Actor
	ticketID    kernel.UUID
	resolution  carecase.TicketStatus
	reason      string
	requestDate *kernel.Day
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveCareRequestCommand creates a command to resolve a ticket.
// requestDate is required for Interest resolutions; warehouseID is
// required for NotInterest, whose cancellation restocks the ledger.
func NewResolveCareRequestCommand(
	actor Actor,
	ticketID kernel.UUID,
	resolution carecase.TicketStatus,
	reason string,
	requestDate *kernel.Day,
	warehouseID *kernel.UUID,
) (ResolveCareRequestCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		ticketID.Validate(),
		resolution.Validate(),
	); err != nil {
		return ResolveCareRequestCommand{}, err
	}

	switch resolution {
	case carecase.TicketStatusInterest:
		if requestDate == nil {
			return ResolveCareRequestCommand{}, errs.NewValueIsRequiredError("requestDate")
		}
	case carecase.TicketStatusNotInterest:
		if reason == "" {
			return ResolveCareRequestCommand{}, errs.NewValueIsRequiredError("reason")
		}

		if warehouseID == nil {
			return ResolveCareRequestCommand{}, errs.NewValueIsRequiredError("warehouseID")
		}

		if err := warehouseID.Validate(); err != nil {
			return ResolveCareRequestCommand{}, err
		}
	case carecase.TicketStatusNotReach:
		// nothing extra to validate
	default:
		return ResolveCareRequestCommand{}, errs.NewValueIsInvalidErrorWithCause("resolution",
			fmt.Errorf("%s is not a resolution", resolution))
	}

	return ResolveCareRequestCommand{
		actor:       actor,
		ticketID:    ticketID,
		resolution:  resolution,
		reason:      reason,
		requestDate: requestDate,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveCareRequestCommand) Validate() error {
	return c.guard.Validate(ErrResolveCareRequestCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c ResolveCareRequestCommand) Actor() Actor {
	return c.actor
}

// TicketID returns the ticket being resolved.
func (c ResolveCareRequestCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// Resolution returns the outcome of the follow-up call.
func (c ResolveCareRequestCommand) Resolution() carecase.TicketStatus {
	return c.resolution
}

// Reason returns the free-form resolution note.
func (c ResolveCareRequestCommand) Reason() string {
	return c.reason
}

// RequestDate returns the follow-up day for Interest resolutions.
func (c ResolveCareRequestCommand) RequestDate() *kernel.Day {
	return c.requestDate
}

// WarehouseID returns the restock warehouse for NotInterest resolutions.
func (c ResolveCareRequestCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}
