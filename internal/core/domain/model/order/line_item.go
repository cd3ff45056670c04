package order

import (
	"errors"
	"fmt"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LinePrices carries the per-package prices and derived totals of a line.
// Amounts are rounded to 2 fraction digits; see services.PricingCalculator
// for the derivation from commission percentages.
type LinePrices struct {
	Price             decimal.Decimal
	DealerPrice       decimal.Decimal
	AgentPrice        decimal.Decimal
	TotalAmount       decimal.Decimal
	DealerTotalAmount decimal.Decimal
	AgentTotalAmount  decimal.Decimal
}

// QuantitySummary tracks how much of a line was ordered versus sold.
// soldQuantity starts at 0 for agent-originated orders (fulfillment pending)
// and at the ordered quantity for ready orders (sold at creation).
type QuantitySummary struct {
	OrderedQuantity int
	SoldQuantity    int
}

// LineItem is an ordered product line inside the Order aggregate.
//
// Invariant: totalAmount = (price / quantityPerPackage) * quantity, and the
// same proportionality holds for the dealer and agent totals. The invariant
// is re-established on every quantity or price edit, so the persisted totals
// can always be recomputed from the persisted prices.
type LineItem struct {
	productID          kernel.UUID
	quantity           int
	quantityPerPackage int
	prices             LinePrices
	summary            QuantitySummary

	cancelled     bool
	cancelledAt   *time.Time
	cancelReason  string
	isConstructed bool
}

// NewLineItem creates a line for a newly placed order.
//
// Parameters:
//   - productID: resolved product reference
//   - quantity: ordered quantity in units (must be positive)
//   - quantityPerPackage: units per package for total derivation (must be positive)
//   - prices: derived pricing for the line at the ordered quantity
//   - soldAtCreation: true for ready orders, which are sold the moment they
//     are created; the summary's soldQuantity then equals the quantity
func NewLineItem(
	productID kernel.UUID,
	quantity int,
	quantityPerPackage int,
	prices LinePrices,
	soldAtCreation bool,
) (*LineItem, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	if quantity <= 0 {
		return nil, invalidLineValue("quantity", quantity)
	}

	if quantityPerPackage <= 0 {
		return nil, invalidLineValue("quantityPerPackage", quantityPerPackage)
	}

	sold := 0
	if soldAtCreation {
		sold = quantity
	}

	return &LineItem{
		productID:          productID,
		quantity:           quantity,
		quantityPerPackage: quantityPerPackage,
		prices:             prices,
		summary: QuantitySummary{
			OrderedQuantity: quantity,
			SoldQuantity:    sold,
		},
		isConstructed: true,
	}, nil
}

// RestoreLineItem reconstructs a line from persistence without re-deriving
// any amounts. Used only by repositories.
func RestoreLineItem(
	productID kernel.UUID,
	quantity int,
	quantityPerPackage int,
	prices LinePrices,
	summary QuantitySummary,
	cancelled bool,
	cancelledAt *time.Time,
	cancelReason string,
) (*LineItem, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	if quantityPerPackage <= 0 {
		return nil, invalidLineValue("quantityPerPackage", quantityPerPackage)
	}

	return &LineItem{
		productID:          productID,
		quantity:           quantity,
		quantityPerPackage: quantityPerPackage,
		prices:             prices,
		summary:            summary,
		cancelled:          cancelled,
		cancelledAt:        cancelledAt,
		cancelReason:       cancelReason,
		isConstructed:      true,
	}, nil
}

// Validate ensures the line was created through a constructor.
func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ProductID returns the resolved product reference.
func (l *LineItem) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the current line quantity in units.
func (l *LineItem) Quantity() int {
	return l.quantity
}

// QuantityPerPackage returns the units-per-package divisor for totals.
func (l *LineItem) QuantityPerPackage() int {
	return l.quantityPerPackage
}

// Prices returns the line's per-package prices and derived totals.
func (l *LineItem) Prices() LinePrices {
	return l.prices
}

// Summary returns the ordered/sold quantity summary.
func (l *LineItem) Summary() QuantitySummary {
	return l.summary
}

// IsCancelled reports whether the line was cancelled.
func (l *LineItem) IsCancelled() bool {
	return l.cancelled
}

// CancelledAt returns the line cancellation time, or nil.
func (l *LineItem) CancelledAt() *time.Time {
	return l.cancelledAt
}

// CancelReason returns the recorded cancellation reason.
func (l *LineItem) CancelReason() string {
	return l.cancelReason
}

// SetQuantity updates the line quantity and recomputes all three totals from
// the stored per-package prices, keeping the pricing invariant intact.
func (l *LineItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return invalidLineValue("quantity", quantity)
	}

	l.quantity = quantity
	l.summary.OrderedQuantity = quantity
	l.recomputeTotals()
	return nil
}

// SetAgentPrice replaces the agent per-package price and recomputes the
// agent total. Used by the agent line-edit variant, which negotiates the
// agent price at delivery time.
func (l *LineItem) SetAgentPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return invalidLineValue("agentPrice", price)
	}

	l.prices.AgentPrice = kernel.RoundMoney(price)
	l.prices.AgentTotalAmount = lineTotal(l.prices.AgentPrice, l.quantityPerPackage, l.quantity)
	return nil
}

// MergeSold merges a delivered quantity into the summary's soldQuantity,
// returning the sell delta against the previously recorded sold quantity.
// The delta feeds that day's inventory allocation.
func (l *LineItem) MergeSold(deliveredQuantity int) (int, error) {
	if deliveredQuantity < 0 {
		return 0, invalidLineValue("deliveredQuantity", deliveredQuantity)
	}

	delta := deliveredQuantity - l.summary.SoldQuantity
	l.summary.SoldQuantity = deliveredQuantity
	return delta, nil
}

// Cancel stamps the line as cancelled.
func (l *LineItem) Cancel(reason string, at time.Time) {
	l.cancelled = true
	l.cancelledAt = &at
	l.cancelReason = reason
}

// recomputeTotals re-derives every total from the stored per-package prices.
func (l *LineItem) recomputeTotals() {
	l.prices.TotalAmount = lineTotal(l.prices.Price, l.quantityPerPackage, l.quantity)
	l.prices.DealerTotalAmount = lineTotal(l.prices.DealerPrice, l.quantityPerPackage, l.quantity)
	l.prices.AgentTotalAmount = lineTotal(l.prices.AgentPrice, l.quantityPerPackage, l.quantity)
}

// lineTotal computes (price / quantityPerPackage) * quantity rounded to
// 2 fraction digits. Mirrors services.LineTotal; kept local so the aggregate
// re-establishes its own invariant without reaching outside the package.
func lineTotal(price decimal.Decimal, quantityPerPackage, quantity int) decimal.Decimal {
	perUnit := price.Div(decimal.NewFromInt(int64(quantityPerPackage)))
	return kernel.RoundMoney(perUnit.Mul(decimal.NewFromInt(int64(quantity))))
}

func invalidLineValue(param string, value any) error {
	return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is not a valid %s", value, param))
}
