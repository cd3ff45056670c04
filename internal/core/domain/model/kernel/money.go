package kernel

import (
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits every monetary amount is
// rounded to at write time.
const MoneyScale = 2

// RoundMoney rounds a monetary amount to MoneyScale fraction digits using
// half-up rounding. All derived amounts (line totals, dealer and agent
// totals, collection amounts) pass through this helper exactly once before
// being stored or compared, so recomputing an amount from the same inputs
// always yields an identical value.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// MoneyFromFloat converts a float payload value to a rounded monetary amount.
// Request payloads carry amounts as JSON numbers; conversion happens at the
// boundary so the domain only ever sees rounded decimals.
func MoneyFromFloat(v float64) decimal.Decimal {
	return RoundMoney(decimal.NewFromFloat(v))
}

// MoneyEqual reports whether two amounts are equal after rounding.
func MoneyEqual(a, b decimal.Decimal) bool {
	return RoundMoney(a).Equal(RoundMoney(b))
}
