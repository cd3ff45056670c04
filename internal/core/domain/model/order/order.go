package order

import (
	"errors"
	"fmt"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// References holds the resolved internal references an order is placed
// against. Retailer, area and dealer are mandatory; the sales agent, the
// delivery staff and the packer are stamped as the order moves through
// intake, dispatch and delivery.
type References struct {
	RetailerID      kernel.UUID
	AreaID          kernel.UUID
	DealerID        kernel.UUID
	AgentID         *kernel.UUID
	DeliveryStaffID *kernel.UUID
	PackerID        *kernel.UUID
}

// SoldDelta is the per-line change in sold quantity produced by a delivery
// or a baki continuation. It feeds the daily inventory allocation for the
// delivering staff.
type SoldDelta struct {
	ProductID kernel.UUID
	Delta     int
}

// Restock is the per-line quantity returned to the stock ledger when an
// order is cancelled.
type Restock struct {
	ProductID kernel.UUID
	Quantity  int
}

// Order represents a retailer order in the system. It is the aggregate root
// that manages the order lifecycle from intake through dispatch and delivery
// to full collection.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty business id
//   - Must reference a retailer, an area and a dealer
//   - Must carry at least one line item
//   - Status transitions follow the Status state machine
//   - paymentStatus always mirrors collectedAmount against collectionAmount
//   - Can only be created through NewOrder / RestoreOrder
type Order struct {
	id         kernel.UUID
	businessID string
	refs       References

	status        Status
	paymentStatus PaymentStatus

	collectionAmount decimal.Decimal
	collectedAmount  decimal.Decimal

	lines []*LineItem

	createdAt    time.Time
	updatedAt    time.Time
	deliveredAt  *time.Time
	cancelledAt  *time.Time
	cancelReason string

	isConstructed bool
}

// NewBusinessID derives the human-readable order id by concatenating the
// retailer, dealer and (optional) agent codes with the creation timestamp.
//
// The timestamp suffix is not monotonic and carries a low but nonzero
// collision probability; this is an accepted property of the scheme, kept
// because the ids are primarily read by humans.
func NewBusinessID(retailerCode, dealerCode, agentCode string, at time.Time) string {
	if agentCode == "" {
		return fmt.Sprintf("%s-%s-%d", retailerCode, dealerCode, at.UnixMilli())
	}
	return fmt.Sprintf("%s-%s-%s-%d", retailerCode, dealerCode, agentCode, at.UnixMilli())
}

// NewOrder creates a new Order with validation.
//
// Parameters:
//   - id: internal unique identifier
//   - businessID: human-readable unique id (see NewBusinessID)
//   - refs: resolved references; retailer, area and dealer are mandatory
//   - lines: the ordered line items (at least one)
//   - initialStatus: Processing for regular intake; Baki or Delivered are
//     accepted for back-dated entry, everything else is rejected
//   - at: creation instant
//
// The collection amount is derived as the sum of all line agent totals, and
// the payment status starts Unpaid.
func NewOrder(
	id kernel.UUID,
	businessID string,
	refs References,
	lines []*LineItem,
	initialStatus Status,
	at time.Time,
) (*Order, error) {
	o := &Order{
		paymentStatus: PaymentUnpaid,
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBusinessID(businessID),
		o.setReferences(refs),
		o.setLines(lines),
		o.setInitialStatus(initialStatus),
	); err != nil {
		return nil, err
	}

	o.collectionAmount = o.sumAgentTotals()
	o.collectedAmount = decimal.Zero
	return o, nil
}

// NewReadyOrder creates an order that was sold on the spot. The lines must
// be built with soldAtCreation, and collectedAmount is the money taken at
// the door. The initial status is derived from the amounts: Delivered when
// the collection is complete, Baki when a remainder is outstanding. The
// delivery staff who made the sale is stamped as the assignee so a later
// baki continuation passes the assignee check.
func NewReadyOrder(
	id kernel.UUID,
	businessID string,
	refs References,
	lines []*LineItem,
	collectedAmount decimal.Decimal,
	at time.Time,
) (*Order, error) {
	if refs.DeliveryStaffID == nil {
		return nil, errs.NewValueIsRequiredError("deliveryStaffID")
	}

	if collectedAmount.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("collectedAmount",
			fmt.Errorf("%s is negative", collectedAmount))
	}

	o := &Order{
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBusinessID(businessID),
		o.setReferences(refs),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.collectionAmount = o.sumAgentTotals()
	o.collectedAmount = kernel.RoundMoney(collectedAmount)
	o.paymentStatus = PaymentStatusFor(o.collectedAmount, o.collectionAmount)

	if o.collectedAmount.GreaterThanOrEqual(o.collectionAmount) {
		o.status = StatusDelivered
		o.deliveredAt = &at
	} else {
		o.status = StatusBaki
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. No amounts are
// re-derived; the persisted state is trusted after basic validation.
func RestoreOrder(
	id kernel.UUID,
	businessID string,
	refs References,
	lines []*LineItem,
	status Status,
	paymentStatus PaymentStatus,
	collectionAmount decimal.Decimal,
	collectedAmount decimal.Decimal,
	createdAt time.Time,
	updatedAt time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
	cancelReason string,
) (*Order, error) {
	o := &Order{
		collectionAmount: collectionAmount,
		collectedAmount:  collectedAmount,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		deliveredAt:      deliveredAt,
		cancelledAt:      cancelledAt,
		cancelReason:     cancelReason,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBusinessID(businessID),
		o.setReferences(refs),
		o.setLines(lines),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentStatus = paymentStatus
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BusinessID returns the human-readable unique order id.
func (o *Order) BusinessID() string {
	return o.businessID
}

// References returns the order's resolved references.
func (o *Order) References() References {
	return o.refs
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CollectionAmount returns the amount to be collected for the order.
func (o *Order) CollectionAmount() decimal.Decimal {
	return o.collectionAmount
}

// CollectedAmount returns the amount collected so far.
func (o *Order) CollectedAmount() decimal.Decimal {
	return o.collectedAmount
}

// Lines returns the order's line items.
func (o *Order) Lines() []*LineItem {
	return o.lines
}

// Line returns the line item for a product, or a NotFound error if the
// product is not a line of the order.
func (o *Order) Line(productID kernel.UUID) (*LineItem, error) {
	for _, l := range o.lines {
		if l.ProductID().IsEqual(productID) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("productId", productID.String())
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation instant.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeliveredAt returns the delivery instant, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns the cancellation instant, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CancelReason returns the recorded cancellation reason.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// Dispatch transitions the order to Dispatched, stamping the assigned
// delivery staff and the calling packer. Pure metadata mutation; stock is
// not touched.
func (o *Order) Dispatch(deliveryStaffID, packerID kernel.UUID, at time.Time) error {
	if err := errors.Join(deliveryStaffID.Validate(), packerID.Validate()); err != nil {
		return err
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.refs.DeliveryStaffID = &deliveryStaffID
	o.refs.PackerID = &packerID
	o.updatedAt = at
	return nil
}

// UpdateLineQuantity edits a line's quantity, recomputing its totals from
// the stored per-package prices. Fails NotFound if the product is not a
// line of the order.
func (o *Order) UpdateLineQuantity(productID kernel.UUID, quantity int, at time.Time) error {
	line, err := o.Line(productID)
	if err != nil {
		return err
	}

	if err = line.SetQuantity(quantity); err != nil {
		return err
	}

	o.updatedAt = at
	return nil
}

// UpdateLineQuantityByAgent is the agent variant of the line edit: besides
// the quantity recompute it persists the negotiated agent price and
// recomputes the order's collection amount as the sum of all line agent
// totals.
func (o *Order) UpdateLineQuantityByAgent(
	productID kernel.UUID,
	quantity int,
	agentPrice decimal.Decimal,
	at time.Time,
) error {
	line, err := o.Line(productID)
	if err != nil {
		return err
	}

	if err = line.SetQuantity(quantity); err != nil {
		return err
	}

	if err = line.SetAgentPrice(agentPrice); err != nil {
		return err
	}

	o.collectionAmount = o.sumAgentTotals()
	o.updatedAt = at
	return nil
}

// Deliver transitions the order to Delivered with full payment.
//
// The caller must be the order's assigned delivery staff; anyone else gets
// a Forbidden error. Each entry of deliveredQuantities is merged into the
// matching line's soldQuantity, and the returned SoldDeltas carry the
// per-line change for that day's inventory allocation.
func (o *Order) Deliver(
	caller kernel.UUID,
	collectionAmount decimal.Decimal,
	collectedAmount decimal.Decimal,
	deliveredQuantities map[string]int,
	at time.Time,
) ([]SoldDelta, error) {
	if err := o.validateAssignedStaff("deliverOrder", caller); err != nil {
		return nil, err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return nil, err
	}

	deltas, err := o.mergeDeliveredQuantities(deliveredQuantities)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	o.paymentStatus = PaymentPaid
	o.collectionAmount = kernel.RoundMoney(collectionAmount)
	o.collectedAmount = kernel.RoundMoney(collectedAmount)
	o.deliveredAt = &at
	o.updatedAt = at
	return deltas, nil
}

// ContinueBaki applies a partial-payment continuation.
//
// The collected amount accumulates: collectedDelta is added to, not written
// over, the running total. Status is recomputed as Delivered iff the
// accumulated amount reaches the collection amount, Baki otherwise, and the
// payment status mirrors the same thresholds. Delivered quantities are
// merged per line exactly as in Deliver.
func (o *Order) ContinueBaki(
	caller kernel.UUID,
	collectedDelta decimal.Decimal,
	deliveredQuantities map[string]int,
	at time.Time,
) ([]SoldDelta, error) {
	if err := o.validateAssignedStaff("continueBakiOrder", caller); err != nil {
		return nil, err
	}

	if err := o.status.Validate(); err != nil {
		return nil, err
	}

	if o.status.IsTerminal() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to continue collection", o.status))
	}

	if collectedDelta.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("collectedAmount",
			fmt.Errorf("%s is negative", collectedDelta))
	}

	deltas, err := o.mergeDeliveredQuantities(deliveredQuantities)
	if err != nil {
		return nil, err
	}

	o.collectedAmount = kernel.RoundMoney(o.collectedAmount.Add(collectedDelta))
	o.paymentStatus = PaymentStatusFor(o.collectedAmount, o.collectionAmount)

	if o.collectedAmount.GreaterThanOrEqual(o.collectionAmount) {
		o.status = StatusDelivered
		o.deliveredAt = &at
	} else {
		o.status = StatusBaki
	}

	o.updatedAt = at
	return deltas, nil
}

// Cancel transitions the order to Cancelled, stamping the reason, the time
// and the caller as delivery-staff-of-record. The returned Restocks carry
// each line's ordered quantity for reversal into the stock ledger.
func (o *Order) Cancel(caller kernel.UUID, reason string, at time.Time) ([]Restock, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}

	restocks := make([]Restock, 0, len(o.lines))
	for _, line := range o.lines {
		if line.Summary().OrderedQuantity <= 0 {
			continue
		}
		line.Cancel(reason, at)
		restocks = append(restocks, Restock{
			ProductID: line.ProductID(),
			Quantity:  line.Summary().OrderedQuantity,
		})
	}

	o.status = newStatus
	o.refs.DeliveryStaffID = &caller
	o.cancelReason = reason
	o.cancelledAt = &at
	o.updatedAt = at
	return restocks, nil
}

// RouteCare sets the order's status directly from a customer-care request
// type (Pending or Baki).
func (o *Order) RouteCare(requestType Status, at time.Time) error {
	newStatus, err := o.status.RouteCare(requestType)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentStatusFor(o.collectedAmount, o.collectionAmount)
	o.updatedAt = at
	return nil
}

// validateAssignedStaff ensures the caller is the order's assigned delivery staff.
func (o *Order) validateAssignedStaff(operation string, caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if o.refs.DeliveryStaffID == nil || !o.refs.DeliveryStaffID.IsEqual(caller) {
		return errs.NewForbiddenErrorWithCause(operation, caller.String(),
			errors.New("order is assigned to a different delivery staff"))
	}
	return nil
}

// mergeDeliveredQuantities merges the payload's delivered quantities into
// the matching lines and collects the nonzero sell deltas.
func (o *Order) mergeDeliveredQuantities(deliveredQuantities map[string]int) ([]SoldDelta, error) {
	deltas := make([]SoldDelta, 0, len(deliveredQuantities))
	for productID, delivered := range deliveredQuantities {
		id, err := kernel.UUIDFromString(productID)
		if err != nil {
			return nil, err
		}

		line, err := o.Line(id)
		if err != nil {
			return nil, err
		}

		delta, err := line.MergeSold(delivered)
		if err != nil {
			return nil, err
		}

		if delta != 0 {
			deltas = append(deltas, SoldDelta{ProductID: id, Delta: delta})
		}
	}
	return deltas, nil
}

// sumAgentTotals derives the collection amount from the non-cancelled lines.
func (o *Order) sumAgentTotals() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.lines {
		if l.IsCancelled() {
			continue
		}
		sum = sum.Add(l.Prices().AgentTotalAmount)
	}
	return kernel.RoundMoney(sum)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBusinessID(businessID string) error {
	if businessID == "" {
		return errs.NewValueIsRequiredError("businessId")
	}
	o.businessID = businessID
	return nil
}

func (o *Order) setReferences(refs References) error {
	if err := errors.Join(
		refs.RetailerID.Validate(),
		refs.AreaID.Validate(),
		refs.DealerID.Validate(),
	); err != nil {
		return err
	}

	for _, optional := range []*kernel.UUID{refs.AgentID, refs.DeliveryStaffID, refs.PackerID} {
		if optional == nil {
			continue
		}
		if err := optional.Validate(); err != nil {
			return err
		}
	}

	o.refs = refs
	return nil
}

func (o *Order) setLines(lines []*LineItem) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	return nil
}

func (o *Order) setInitialStatus(status Status) error {
	if err := status.ValidateInitial(); err != nil {
		return err
	}
	o.status = status
	return nil
}
