package carecase

import (
	"errors"
	"fmt"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
)

var (
	// ErrTicketIsNotConstructed is returned when a Ticket instance was not
	// created through the NewTicket factory method.
	ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")

	// ErrTicketAlreadyResolved is returned when resolving a ticket that has
	// already left the New state.
	ErrTicketAlreadyResolved = errors.New("ticket is already resolved")
)

// RequestType is the reason a customer-care intake was filed. Filing a
// ticket routes the underlying order into the matching status, so the two
// types map directly onto the Pending and Baki order states.
type RequestType int

const (
	// RequestTypeUnknown represents an invalid or undefined request type.
	RequestTypeUnknown RequestType = iota

	// RequestTypePending marks an order whose customer needs a follow-up
	// call before delivery can be collected.
	RequestTypePending

	// RequestTypeBaki marks an order with an outstanding partial
	// collection to be completed on a later run.
	RequestTypeBaki
)

// Validate checks that the request type is one of the defined values.
func (t RequestType) Validate() error {
	if t != RequestTypePending && t != RequestTypeBaki {
		return errs.NewValueIsInvalidErrorWithCause("requestType",
			fmt.Errorf("%d is not a valid request type", t))
	}
	return nil
}

// String returns the human-readable name of the request type.
func (t RequestType) String() string {
	switch t {
	case RequestTypePending:
		return "Pending"
	case RequestTypeBaki:
		return "Baki"
	default:
		return "Unknown"
	}
}

// OrderStatus returns the order status this request type routes to.
func (t RequestType) OrderStatus() (order.Status, error) {
	switch t {
	case RequestTypePending:
		return order.StatusPending, nil
	case RequestTypeBaki:
		return order.StatusBaki, nil
	default:
		return order.StatusUnknown, errs.NewValueIsInvalidErrorWithCause("requestType",
			fmt.Errorf("%d has no order status", t))
	}
}

// RequestTypeFromString parses a request type from its string form.
func RequestTypeFromString(s string) (RequestType, error) {
	switch s {
	case "Pending":
		return RequestTypePending, nil
	case "Baki":
		return RequestTypeBaki, nil
	default:
		return RequestTypeUnknown, errs.NewValueIsInvalidErrorWithCause("requestType",
			fmt.Errorf("%q is not a valid request type", s))
	}
}

// TicketStatus is the resolution state of a customer-care ticket.
type TicketStatus int

const (
	// TicketStatusUnknown represents an invalid or undefined status.
	TicketStatusUnknown TicketStatus = iota

	// TicketStatusNew marks a freshly filed or refiled ticket.
	TicketStatusNew

	// TicketStatusInterest marks a customer who agreed to a follow-up run.
	TicketStatusInterest

	// TicketStatusNotInterest marks a customer who declined the order.
	TicketStatusNotInterest

	// TicketStatusNotReach marks a customer who could not be contacted.
	TicketStatusNotReach
)

// Validate checks that the status is one of the defined values.
func (s TicketStatus) Validate() error {
	switch s {
	case TicketStatusNew, TicketStatusInterest, TicketStatusNotInterest, TicketStatusNotReach:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("ticketStatus",
			fmt.Errorf("%d is not a valid ticket status", s))
	}
}

// String returns the human-readable name of the status.
func (s TicketStatus) String() string {
	switch s {
	case TicketStatusNew:
		return "New"
	case TicketStatusInterest:
		return "Interest"
	case TicketStatusNotInterest:
		return "NotInterest"
	case TicketStatusNotReach:
		return "NotReach"
	default:
		return "Unknown"
	}
}

// TicketStatusFromString parses a ticket status from its string form.
func TicketStatusFromString(s string) (TicketStatus, error) {
	switch s {
	case "New":
		return TicketStatusNew, nil
	case "Interest":
		return TicketStatusInterest, nil
	case "NotInterest":
		return TicketStatusNotInterest, nil
	case "NotReach":
		return TicketStatusNotReach, nil
	default:
		return TicketStatusUnknown, errs.NewValueIsInvalidErrorWithCause("ticketStatus",
			fmt.Errorf("%q is not a valid ticket status", s))
	}
}

// Ticket is the single customer-care case bound to an order.
type Ticket struct {
	id              kernel.UUID
	orderID         kernel.UUID
	retailerID      kernel.UUID
	deliveryStaffID kernel.UUID

	requestType RequestType
	status      TicketStatus
	reason      string
	requestDate *kernel.Day

	filedAt   time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewTicket files the first customer-care case for an order.
func NewTicket(
	id kernel.UUID,
	orderID kernel.UUID,
	retailerID kernel.UUID,
	deliveryStaffID kernel.UUID,
	requestType RequestType,
	reason string,
	at time.Time,
) (*Ticket, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		retailerID.Validate(),
		deliveryStaffID.Validate(),
		requestType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Ticket{
		id:              id,
		orderID:         orderID,
		retailerID:      retailerID,
		deliveryStaffID: deliveryStaffID,
		requestType:     requestType,
		status:          TicketStatusNew,
		reason:          reason,
		filedAt:         at,
		updatedAt:       at,
		isConstructed:   true,
	}, nil
}

// RestoreTicket reconstructs a ticket from persistence.
func RestoreTicket(
	id kernel.UUID,
	orderID kernel.UUID,
	retailerID kernel.UUID,
	deliveryStaffID kernel.UUID,
	requestType RequestType,
	status TicketStatus,
	reason string,
	requestDate *kernel.Day,
	filedAt time.Time,
	updatedAt time.Time,
) (*Ticket, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		retailerID.Validate(),
		deliveryStaffID.Validate(),
		requestType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Ticket{
		id:              id,
		orderID:         orderID,
		retailerID:      retailerID,
		deliveryStaffID: deliveryStaffID,
		requestType:     requestType,
		status:          status,
		reason:          reason,
		requestDate:     requestDate,
		filedAt:         filedAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the ticket was created through a constructor.
func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}
	return nil
}

// ID returns the ticket identifier.
func (t *Ticket) ID() kernel.UUID { return t.id }

// OrderID returns the order this ticket is bound to.
func (t *Ticket) OrderID() kernel.UUID { return t.orderID }

// RetailerID returns the retailer reference.
func (t *Ticket) RetailerID() kernel.UUID { return t.retailerID }

// DeliveryStaffID returns the delivery staff who filed the intake.
func (t *Ticket) DeliveryStaffID() kernel.UUID { return t.deliveryStaffID }

// RequestType returns the current intake reason.
func (t *Ticket) RequestType() RequestType { return t.requestType }

// Status returns the resolution state.
func (t *Ticket) Status() TicketStatus { return t.status }

// Reason returns the free-form note from the latest intake or resolution.
func (t *Ticket) Reason() string { return t.reason }

// RequestDate returns the follow-up day stamped by an Interest resolution,
// or nil when none was set.
func (t *Ticket) RequestDate() *kernel.Day { return t.requestDate }

// FiledAt returns the time of the first intake.
func (t *Ticket) FiledAt() time.Time { return t.filedAt }

// UpdatedAt returns the time of the latest intake or resolution.
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// Refile records a repeat intake for the same order. The ticket's request
// type and reason are overwritten and its resolution state resets to New.
func (t *Ticket) Refile(requestType RequestType, deliveryStaffID kernel.UUID, reason string, at time.Time) error {
	if err := errors.Join(requestType.Validate(), deliveryStaffID.Validate()); err != nil {
		return err
	}

	t.requestType = requestType
	t.deliveryStaffID = deliveryStaffID
	t.reason = reason
	t.status = TicketStatusNew
	t.requestDate = nil
	t.updatedAt = at
	return nil
}

// MarkInterest resolves the ticket as Interest and stamps the follow-up
// day used by the daily collection run to route the order into that day's
// worklist.
func (t *Ticket) MarkInterest(requestDate kernel.Day, at time.Time) error {
	if err := requestDate.Validate(); err != nil {
		return err
	}

	if t.status != TicketStatusNew {
		return ErrTicketAlreadyResolved
	}

	t.status = TicketStatusInterest
	t.requestDate = &requestDate
	t.updatedAt = at
	return nil
}

// MarkNotInterest resolves the ticket as NotInterest. The returned flag
// tells the caller whether the underlying order must be cancelled in the
// same transaction: Pending tickets cancel the order, Baki tickets are
// annotated only because money has already changed hands.
func (t *Ticket) MarkNotInterest(reason string, at time.Time) (cancelOrder bool, err error) {
	if t.status != TicketStatusNew {
		return false, ErrTicketAlreadyResolved
	}

	t.status = TicketStatusNotInterest
	t.reason = reason
	t.updatedAt = at
	return t.requestType == RequestTypePending, nil
}

// MarkNotReach resolves the ticket as NotReach, keeping the order as is so
// a later run can try the customer again.
func (t *Ticket) MarkNotReach(at time.Time) error {
	if t.status != TicketStatusNew {
		return ErrTicketAlreadyResolved
	}

	t.status = TicketStatusNotReach
	t.updatedAt = at
	return nil
}
