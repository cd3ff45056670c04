package commands

import (
	"errors"

	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrFileCareRequestCommandIsNotConstructed is returned when a
// FileCareRequestCommand was not created via its constructor.
var ErrFileCareRequestCommandIsNotConstructed = errors.New(
	"FileCareRequestCommand must be created via NewFileCareRequestCommand constructor",
)

// FileCareRequestCommand represents a customer-care intake for an order.
// The intake routes the order directly into the requested status (Pending
// or Baki) and files or refiles the order's single ticket.
type FileCareRequestCommand struct { //nolint:recvcheck //using for validation
	actor           Actor
	orderID         kernel.UUID
	deliveryStaffID kernel.UUID
	requestType     carecase.RequestType
	reason          string

	guard guard.ConstructorGuard
}

// NewFileCareRequestCommand creates a command to file a care intake.
// deliveryStaffID is the staff who reported the case, which may differ
// from the care-desk actor entering it.
func NewFileCareRequestCommand(
	actor Actor,
	orderID kernel.UUID,
	deliveryStaffID kernel.UUID,
	requestType carecase.RequestType,
	reason string,
) (FileCareRequestCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		deliveryStaffID.Validate(),
		requestType.Validate(),
	); err != nil {
		return FileCareRequestCommand{}, err
	}

	if reason == "" {
		return FileCareRequestCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return FileCareRequestCommand{
		actor:           actor,
		orderID:         orderID,
		deliveryStaffID: deliveryStaffID,
		requestType:     requestType,
		reason:          reason,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FileCareRequestCommand) Validate() error {
	return c.guard.Validate(ErrFileCareRequestCommandIsNotConstructed)
}

// Actor returns the caller invoking the command.
func (c FileCareRequestCommand) Actor() Actor {
	return c.actor
}

// OrderID returns the order the intake concerns.
func (c FileCareRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryStaffID returns the staff who reported the case.
func (c FileCareRequestCommand) DeliveryStaffID() kernel.UUID {
	return c.deliveryStaffID
}

// RequestType returns the intake reason.
func (c FileCareRequestCommand) RequestType() carecase.RequestType {
	return c.requestType
}

// Reason returns the free-form intake note.
func (c FileCareRequestCommand) Reason() string {
	return c.reason
}
