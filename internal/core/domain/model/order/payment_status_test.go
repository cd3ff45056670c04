package order_test

import (
	"testing"

	"distribution/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatusFor(t *testing.T) {
	collection := decimal.RequireFromString("500")

	t.Run("nothing collected is unpaid", func(t *testing.T) {
		assert.Equal(t, order.PaymentUnpaid, order.PaymentStatusFor(decimal.Zero, collection))
	})

	t.Run("partial collection is partial paid", func(t *testing.T) {
		collected := decimal.RequireFromString("200")
		assert.Equal(t, order.PaymentPartialPaid, order.PaymentStatusFor(collected, collection))
	})

	t.Run("full collection is paid", func(t *testing.T) {
		assert.Equal(t, order.PaymentPaid, order.PaymentStatusFor(collection, collection))
	})

	t.Run("over-collection is still paid", func(t *testing.T) {
		collected := decimal.RequireFromString("500.01")
		assert.Equal(t, order.PaymentPaid, order.PaymentStatusFor(collected, collection))
	})
}

func TestPaymentStatus_Validate(t *testing.T) {
	require.NoError(t, order.PaymentUnpaid.Validate())
	require.NoError(t, order.PaymentPartialPaid.Validate())
	require.NoError(t, order.PaymentPaid.Validate())
	require.Error(t, order.PaymentUnknown.Validate())
	require.Error(t, order.PaymentStatus(42).Validate())
}

func TestPaymentStatusFromString(t *testing.T) {
	for _, p := range []order.PaymentStatus{
		order.PaymentUnpaid, order.PaymentPartialPaid, order.PaymentPaid,
	} {
		parsed, err := order.PaymentStatusFromString(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := order.PaymentStatusFromString("Overdue")
	require.Error(t, err)
}
