package services

import (
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LinePricing carries every derived monetary value for one order line.
// All amounts are rounded to 2 fraction digits; recomputing from the same
// inputs always yields identical values.
type LinePricing struct {
	// Price is the base price per package, as charged to the retailer.
	Price decimal.Decimal

	// DealerPrice is the per-package price after the dealer commission.
	DealerPrice decimal.Decimal

	// AgentPrice is the per-package price after the agent commission.
	AgentPrice decimal.Decimal

	// TotalAmount is the retailer total for the line's quantity.
	TotalAmount decimal.Decimal

	// DealerTotalAmount is the dealer total for the line's quantity.
	DealerTotalAmount decimal.Decimal

	// AgentTotalAmount is the agent total for the line's quantity. The sum of
	// all line agent totals is the order's collection amount.
	AgentTotalAmount decimal.Decimal
}

// PricingCalculator is a domain service that derives dealer and agent prices
// and line totals from a product's base price, the commission percentages and
// the ordered quantity.
//
// A line total is computed as (price / quantityPerPackage) * quantity: the
// price is quoted per package while quantities are counted in units, so the
// per-unit price is derived first.
//
// Example usage:
//
//	calc := services.NewPricingCalculator()
//	pricing, err := calc.Calculate(
//	    decimal.RequireFromString("120"), // base price per package
//	    12,                               // units per package
//	    24,                               // ordered units
//	    decimal.RequireFromString("5"),   // dealer commission %
//	    decimal.RequireFromString("2"),   // agent commission %
//	)
//	if err != nil {
//	    // Handle invalid inputs
//	}
//	// pricing.TotalAmount == 240.00, pricing.DealerPrice == 114.00
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate derives the full pricing for one order line.
//
// Validation rules:
//   - price must not be negative
//   - quantityPerPackage must be greater than 0
//   - quantity must not be negative
//   - commission percentages must lie in [0, 100]
//
// Returns the derived LinePricing, or a validation error describing the
// first offending input.
func (PricingCalculator) Calculate(
	price decimal.Decimal,
	quantityPerPackage int,
	quantity int,
	dealerCommissionPct decimal.Decimal,
	agentCommissionPct decimal.Decimal,
) (LinePricing, error) {
	if price.IsNegative() {
		return LinePricing{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	if quantityPerPackage <= 0 {
		return LinePricing{}, errs.NewValueIsInvalidErrorWithCause("quantityPerPackage",
			fmt.Errorf("%d is not greater than 0", quantityPerPackage))
	}

	if quantity < 0 {
		return LinePricing{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	dealerPrice, err := applyCommission(price, dealerCommissionPct, "dealerCommission")
	if err != nil {
		return LinePricing{}, err
	}

	agentPrice, err := applyCommission(price, agentCommissionPct, "agentCommission")
	if err != nil {
		return LinePricing{}, err
	}

	return LinePricing{
		Price:             kernel.RoundMoney(price),
		DealerPrice:       dealerPrice,
		AgentPrice:        agentPrice,
		TotalAmount:       LineTotal(price, quantityPerPackage, quantity),
		DealerTotalAmount: LineTotal(dealerPrice, quantityPerPackage, quantity),
		AgentTotalAmount:  LineTotal(agentPrice, quantityPerPackage, quantity),
	}, nil
}

// LineTotal computes (price / quantityPerPackage) * quantity rounded to
// 2 fraction digits. It is reused whenever a line's quantity is edited.
func LineTotal(price decimal.Decimal, quantityPerPackage int, quantity int) decimal.Decimal {
	perUnit := price.Div(decimal.NewFromInt(int64(quantityPerPackage)))
	return kernel.RoundMoney(perUnit.Mul(decimal.NewFromInt(int64(quantity))))
}

// applyCommission reduces a price by a commission percentage and rounds.
func applyCommission(price, pct decimal.Decimal, paramName string) (decimal.Decimal, error) {
	hundred := decimal.NewFromInt(100)
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return decimal.Decimal{}, errs.NewValueIsOutOfRangeError(paramName, pct.String(), 0, 100)
	}

	discount := price.Mul(pct).Div(hundred)
	return kernel.RoundMoney(price.Sub(discount)), nil
}
