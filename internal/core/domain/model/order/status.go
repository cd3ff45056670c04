package order

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Processing ──> Dispatched ──> Delivered
//	     │              │             ▲
//	     │              ▼             │
//	     ├──────> Pending/Baki ───────┘
//	     │      (customer-care routing,
//	     │       baki continuation)
//	     ▼
//	 Cancelled  (reachable from every non-terminal state)
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Customer-care intake may route any non-terminal order directly to
// Pending or Baki; a baki continuation promotes Baki to Delivered once
// the collected amount reaches the collection amount.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending marks an order deferred by customer care: the retailer
	// could not be reached or collection was postponed entirely.
	StatusPending

	// StatusBaki marks a partially paid order awaiting full collection.
	StatusBaki

	// StatusCustomerCare marks an order handed to the customer-care desk
	// without a pending/baki classification yet.
	StatusCustomerCare

	// StatusProcessing is the initial status for newly placed orders
	// waiting to be picked and packed.
	StatusProcessing

	// StatusDispatched marks an order handed to a delivery staff for
	// last-mile delivery.
	StatusDispatched

	// StatusDelivered marks a fully delivered and fully collected order.
	// This is a terminal state.
	StatusDelivered

	// StatusCancelled marks a cancelled order. This is a terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "Unknown",
		StatusPending:      "Pending",
		StatusBaki:         "Baki",
		StatusCustomerCare: "CustomerCare",
		StatusProcessing:   "Processing",
		StatusDispatched:   "Dispatched",
		StatusDelivered:    "Delivered",
		StatusCancelled:    "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:      "Pending",
		StatusBaki:         "Baki",
		StatusCustomerCare: "CustomerCare",
		StatusProcessing:   "Processing",
		StatusDispatched:   "Dispatched",
		StatusDelivered:    "Delivered",
		StatusCancelled:    "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its human-readable name.
// Used when reconstructing orders from persistence and request payloads.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidateInitial checks whether a status may be supplied at order creation.
//
// Orders default to Processing; a back-dated entry may explicitly supply
// Baki or Delivered. Every other status is rejected.
func (s Status) ValidateInitial() error {
	if s != StatusProcessing && s != StatusBaki && s != StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid initial status", s.String()),
		)
	}
	return nil
}

// Dispatch transitions the status to Dispatched.
//
// Valid from Processing and Pending (a deferred order can re-enter the
// delivery run). Returns an error for every other status.
func (s Status) Dispatch() (Status, error) {
	if s != StatusProcessing && s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}
	return StatusDispatched, nil
}

// Deliver transitions the status to Delivered.
//
// Valid from any non-terminal status: delivery closes dispatched runs as
// well as deferred pending/baki collections.
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return StatusCancelled, nil
}

// RouteCare transitions the status to the customer-care request type
// (Pending or Baki). Customer-care intake is permitted to directly drive
// the order's primary state for any non-terminal order.
func (s Status) RouteCare(to Status) (Status, error) {
	if to != StatusPending && to != StatusBaki {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"requestType",
			fmt.Errorf("%s is not a valid customer-care request type", to.String()),
		)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to route to customer care", s.String()),
		)
	}
	return to, nil
}
