package order

import (
	"fmt"

	"distribution/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment state of an order, derived from the
// collected amount against the collection amount.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid means nothing has been collected yet.
	PaymentUnpaid

	// PaymentPartialPaid means part of the collection amount has been
	// collected. The order itself is in Baki status.
	PaymentPartialPaid

	// PaymentPaid means the full collection amount has been collected.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:     "Unknown",
		PaymentUnpaid:      "Unpaid",
		PaymentPartialPaid: "PartialPaid",
		PaymentPaid:        "Paid",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if p != PaymentUnpaid && p != PaymentPartialPaid && p != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PaymentStatusFromString parses a payment status from its human-readable name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// PaymentStatusFor derives the payment status from the collected amount
// against the collection amount:
//
//	collected == 0          -> Unpaid
//	0 < collected < amount  -> PartialPaid
//	collected >= amount     -> Paid
//
// The same thresholds drive the Baki/Delivered status recomputation, so
// status and payment status can never disagree.
func PaymentStatusFor(collected, collection decimal.Decimal) PaymentStatus {
	switch {
	case collected.LessThanOrEqual(decimal.Zero):
		return PaymentUnpaid
	case collected.LessThan(collection):
		return PaymentPartialPaid
	default:
		return PaymentPaid
	}
}
