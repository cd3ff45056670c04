package order_test

import (
	"testing"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRefs() order.References {
	return order.References{
		RetailerID: kernel.NewUUID(),
		AreaID:     kernel.NewUUID(),
		DealerID:   kernel.NewUUID(),
	}
}

func newTestOrder(t *testing.T, lines ...*order.LineItem) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		line, err := order.NewLineItem(kernel.NewUUID(), 24, 12, testPrices(24), false)
		require.NoError(t, err)
		lines = []*order.LineItem{line}
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), "R1-D1-1756700000000", validRefs(), lines,
		order.StatusProcessing, time.Now(),
	)
	require.NoError(t, err)
	return o
}

// dispatchOrder moves a fresh order to Dispatched and returns the assigned staff.
func dispatchOrder(t *testing.T, o *order.Order) kernel.UUID {
	t.Helper()
	staff := kernel.NewUUID()
	require.NoError(t, o.Dispatch(staff, kernel.NewUUID(), time.Now()))
	return staff
}

func TestNewBusinessID(t *testing.T) {
	at := time.UnixMilli(1756700000000)

	t.Run("concatenates retailer, dealer, agent and timestamp", func(t *testing.T) {
		id := order.NewBusinessID("R1", "D1", "A1", at)
		assert.Equal(t, "R1-D1-A1-1756700000000", id)
	})

	t.Run("omits the agent segment when absent", func(t *testing.T) {
		id := order.NewBusinessID("R1", "D1", "", at)
		assert.Equal(t, "R1-D1-1756700000000", id)
	})
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	now := time.Now()

	t.Run("creates a processing order with derived collection amount", func(t *testing.T) {
		line, err := order.NewLineItem(kernel.NewUUID(), 24, 12, testPrices(24), false)
		require.NoError(t, err)

		o, err := order.NewOrder(validID, "R1-D1-1", validRefs(), []*order.LineItem{line},
			order.StatusProcessing, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusProcessing, o.Status())
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
		assert.True(t, o.CollectionAmount().Equal(dec("235.2")),
			"collection amount was %s", o.CollectionAmount())
		assert.True(t, o.CollectedAmount().IsZero())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("accepts back-dated baki entry", func(t *testing.T) {
		line, err := order.NewLineItem(kernel.NewUUID(), 24, 12, testPrices(24), false)
		require.NoError(t, err)

		o, err := order.NewOrder(validID, "R1-D1-2", validRefs(), []*order.LineItem{line},
			order.StatusBaki, now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusBaki, o.Status())
	})

	t.Run("rejects dispatched as initial status", func(t *testing.T) {
		line, err := order.NewLineItem(kernel.NewUUID(), 24, 12, testPrices(24), false)
		require.NoError(t, err)

		_, err = order.NewOrder(validID, "R1-D1-3", validRefs(), []*order.LineItem{line},
			order.StatusDispatched, now)
		require.Error(t, err)
	})

	t.Run("rejects empty business id", func(t *testing.T) {
		line, err := order.NewLineItem(kernel.NewUUID(), 24, 12, testPrices(24), false)
		require.NoError(t, err)

		_, err = order.NewOrder(validID, "", validRefs(), []*order.LineItem{line},
			order.StatusProcessing, now)
		require.Error(t, err)
	})

	t.Run("rejects missing line items", func(t *testing.T) {
		_, err := order.NewOrder(validID, "R1-D1-4", validRefs(), nil,
			order.StatusProcessing, now)
		require.Error(t, err)
	})

	t.Run("rejects invalid mandatory references", func(t *testing.T) {
		line, err := order.NewLineItem(kernel.NewUUID(), 24, 12, testPrices(24), false)
		require.NoError(t, err)

		refs := validRefs()
		refs.DealerID = kernel.UUID{}
		_, err = order.NewOrder(validID, "R1-D1-5", refs, []*order.LineItem{line},
			order.StatusProcessing, now)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestNewReadyOrder(t *testing.T) {
	now := time.Now()

	readyRefs := func() order.References {
		refs := validRefs()
		staff := kernel.NewUUID()
		refs.DeliveryStaffID = &staff
		return refs
	}

	soldLine := func(t *testing.T) *order.LineItem {
		t.Helper()
		line, err := order.NewLineItem(kernel.NewUUID(), 24, 12, testPrices(24), true)
		require.NoError(t, err)
		return line
	}

	t.Run("fully collected sale is delivered and paid", func(t *testing.T) {
		o, err := order.NewReadyOrder(kernel.NewUUID(), "R1-D1-6", readyRefs(),
			[]*order.LineItem{soldLine(t)}, dec("235.2"), now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, now, *o.DeliveredAt())
	})

	t.Run("partial collection leaves a baki order", func(t *testing.T) {
		o, err := order.NewReadyOrder(kernel.NewUUID(), "R1-D1-7", readyRefs(),
			[]*order.LineItem{soldLine(t)}, dec("100"), now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusBaki, o.Status())
		assert.Equal(t, order.PaymentPartialPaid, o.PaymentStatus())
		assert.Nil(t, o.DeliveredAt())
		assert.True(t, o.CollectedAmount().Equal(dec("100")))
	})

	t.Run("requires a delivery staff assignee", func(t *testing.T) {
		_, err := order.NewReadyOrder(kernel.NewUUID(), "R1-D1-8", validRefs(),
			[]*order.LineItem{soldLine(t)}, dec("235.2"), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative collected amount", func(t *testing.T) {
		_, err := order.NewReadyOrder(kernel.NewUUID(), "R1-D1-9", readyRefs(),
			[]*order.LineItem{soldLine(t)}, dec("-1"), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Dispatch(t *testing.T) {
	t.Run("stamps delivery staff and packer", func(t *testing.T) {
		o := newTestOrder(t)
		staff := kernel.NewUUID()
		packer := kernel.NewUUID()

		require.NoError(t, o.Dispatch(staff, packer, time.Now()))

		assert.Equal(t, order.StatusDispatched, o.Status())
		require.NotNil(t, o.References().DeliveryStaffID)
		assert.True(t, o.References().DeliveryStaffID.IsEqual(staff))
		require.NotNil(t, o.References().PackerID)
		assert.True(t, o.References().PackerID.IsEqual(packer))
	})

	t.Run("rejects invalid staff reference", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.Dispatch(kernel.UUID{}, kernel.NewUUID(), time.Now()))
	})

	t.Run("cannot dispatch a delivered order", func(t *testing.T) {
		o := newTestOrder(t)
		staff := dispatchOrder(t, o)

		_, err := o.Deliver(staff, dec("500"), dec("500"), nil, time.Now())
		require.NoError(t, err)

		require.Error(t, o.Dispatch(kernel.NewUUID(), kernel.NewUUID(), time.Now()))
	})
}

func TestOrder_UpdateLineQuantity(t *testing.T) {
	t.Run("recomputes line totals", func(t *testing.T) {
		productID := kernel.NewUUID()
		line, err := order.NewLineItem(productID, 24, 12, testPrices(24), false)
		require.NoError(t, err)
		o := newTestOrder(t, line)

		require.NoError(t, o.UpdateLineQuantity(productID, 30, time.Now()))

		updated, err := o.Line(productID)
		require.NoError(t, err)
		assert.Equal(t, 30, updated.Quantity())
		assert.True(t, updated.Prices().TotalAmount.Equal(dec("300")))
	})

	t.Run("fails NotFound for a product that is not a line", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.UpdateLineQuantity(kernel.NewUUID(), 30, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_UpdateLineQuantityByAgent(t *testing.T) {
	t.Run("recomputes collection amount from agent totals", func(t *testing.T) {
		productID := kernel.NewUUID()
		line, err := order.NewLineItem(productID, 24, 12, testPrices(24), false)
		require.NoError(t, err)
		o := newTestOrder(t, line)

		// 120 per package of 12 -> 10 per unit; 30 units -> 300
		require.NoError(t, o.UpdateLineQuantityByAgent(productID, 30, dec("120"), time.Now()))

		updated, err := o.Line(productID)
		require.NoError(t, err)
		assert.True(t, updated.Prices().AgentPrice.Equal(dec("120")))
		assert.True(t, updated.Prices().AgentTotalAmount.Equal(dec("300")))
		assert.True(t, o.CollectionAmount().Equal(dec("300")),
			"collection amount was %s", o.CollectionAmount())
	})

	t.Run("fails NotFound for an unknown product", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.UpdateLineQuantityByAgent(kernel.NewUUID(), 30, dec("120"), time.Now())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_Deliver(t *testing.T) {
	t.Run("full collection marks delivered and paid", func(t *testing.T) {
		productID := kernel.NewUUID()
		line, err := order.NewLineItem(productID, 24, 12, testPrices(24), false)
		require.NoError(t, err)
		o := newTestOrder(t, line)
		staff := dispatchOrder(t, o)
		at := time.Now()

		deltas, err := o.Deliver(staff, dec("500"), dec("500"),
			map[string]int{productID.String(): 24}, at)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.True(t, o.CollectionAmount().Equal(dec("500")))
		assert.True(t, o.CollectedAmount().Equal(dec("500")))
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, at, *o.DeliveredAt())

		require.Len(t, deltas, 1)
		assert.True(t, deltas[0].ProductID.IsEqual(productID))
		assert.Equal(t, 24, deltas[0].Delta)
	})

	t.Run("caller other than assigned staff is forbidden", func(t *testing.T) {
		o := newTestOrder(t)
		dispatchOrder(t, o)

		_, err := o.Deliver(kernel.NewUUID(), dec("500"), dec("500"), nil, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.StatusDispatched, o.Status())
	})

	t.Run("unassigned order cannot be delivered", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.Deliver(kernel.NewUUID(), dec("500"), dec("500"), nil, time.Now())
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown product in payload fails NotFound", func(t *testing.T) {
		o := newTestOrder(t)
		staff := dispatchOrder(t, o)

		_, err := o.Deliver(staff, dec("500"), dec("500"),
			map[string]int{kernel.NewUUID().String(): 5}, time.Now())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_ContinueBaki(t *testing.T) {
	t.Run("partial then full collection", func(t *testing.T) {
		o := newTestOrder(t)
		staff := dispatchOrder(t, o)

		// Fix the collection target via delivery bookkeeping semantics:
		// continue against the derived collection amount of 235.2.
		first, err := o.ContinueBaki(staff, dec("200"), nil, time.Now())
		require.NoError(t, err)
		assert.Empty(t, first)
		assert.Equal(t, order.StatusBaki, o.Status())
		assert.Equal(t, order.PaymentPartialPaid, o.PaymentStatus())
		assert.True(t, o.CollectedAmount().Equal(dec("200")))

		_, err = o.ContinueBaki(staff, dec("35.2"), nil, time.Now())
		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.True(t, o.CollectedAmount().Equal(dec("235.2")))
		assert.NotNil(t, o.DeliveredAt())
	})

	t.Run("collected amount accumulates rather than replaces", func(t *testing.T) {
		o := newTestOrder(t)
		staff := dispatchOrder(t, o)

		_, err := o.ContinueBaki(staff, dec("100"), nil, time.Now())
		require.NoError(t, err)
		_, err = o.ContinueBaki(staff, dec("100"), nil, time.Now())
		require.NoError(t, err)

		assert.True(t, o.CollectedAmount().Equal(dec("200")))
	})

	t.Run("sell deltas reflect only the newly sold quantity", func(t *testing.T) {
		productID := kernel.NewUUID()
		line, err := order.NewLineItem(productID, 24, 12, testPrices(24), false)
		require.NoError(t, err)
		o := newTestOrder(t, line)
		staff := dispatchOrder(t, o)

		deltas, err := o.ContinueBaki(staff, dec("100"),
			map[string]int{productID.String(): 10}, time.Now())
		require.NoError(t, err)
		require.Len(t, deltas, 1)
		assert.Equal(t, 10, deltas[0].Delta)

		deltas, err = o.ContinueBaki(staff, dec("50"),
			map[string]int{productID.String(): 16}, time.Now())
		require.NoError(t, err)
		require.Len(t, deltas, 1)
		assert.Equal(t, 6, deltas[0].Delta)
	})

	t.Run("rejects negative collected delta", func(t *testing.T) {
		o := newTestOrder(t)
		staff := dispatchOrder(t, o)

		_, err := o.ContinueBaki(staff, dec("-1"), nil, time.Now())
		require.Error(t, err)
	})

	t.Run("forbidden for non-assigned caller", func(t *testing.T) {
		o := newTestOrder(t)
		dispatchOrder(t, o)

		_, err := o.ContinueBaki(kernel.NewUUID(), dec("100"), nil, time.Now())
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("cancelled order cannot continue collection", func(t *testing.T) {
		o := newTestOrder(t)
		staff := dispatchOrder(t, o)

		_, err := o.Cancel(staff, "retailer closed", time.Now())
		require.NoError(t, err)

		_, err = o.ContinueBaki(staff, dec("100"), nil, time.Now())
		require.Error(t, err)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("stamps reason, time and staff of record, returns restocks", func(t *testing.T) {
		productID := kernel.NewUUID()
		line, err := order.NewLineItem(productID, 24, 12, testPrices(24), false)
		require.NoError(t, err)
		o := newTestOrder(t, line)
		caller := kernel.NewUUID()
		at := time.Now()

		restocks, err := o.Cancel(caller, "duplicate order", at)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "duplicate order", o.CancelReason())
		require.NotNil(t, o.CancelledAt())
		require.NotNil(t, o.References().DeliveryStaffID)
		assert.True(t, o.References().DeliveryStaffID.IsEqual(caller))

		require.Len(t, restocks, 1)
		assert.True(t, restocks[0].ProductID.IsEqual(productID))
		assert.Equal(t, 24, restocks[0].Quantity)

		cancelled, err := o.Line(productID)
		require.NoError(t, err)
		assert.True(t, cancelled.IsCancelled())
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		o := newTestOrder(t)
		caller := kernel.NewUUID()

		_, err := o.Cancel(caller, "first", time.Now())
		require.NoError(t, err)

		_, err = o.Cancel(caller, "second", time.Now())
		require.Error(t, err)
	})

	t.Run("cannot cancel a delivered order", func(t *testing.T) {
		o := newTestOrder(t)
		staff := dispatchOrder(t, o)
		_, err := o.Deliver(staff, dec("500"), dec("500"), nil, time.Now())
		require.NoError(t, err)

		_, err = o.Cancel(staff, "too late", time.Now())
		require.Error(t, err)
	})
}

func TestOrder_RouteCare(t *testing.T) {
	t.Run("routes to pending", func(t *testing.T) {
		o := newTestOrder(t)
		dispatchOrder(t, o)

		require.NoError(t, o.RouteCare(order.StatusPending, time.Now()))
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
	})

	t.Run("routes to baki keeps partial payment consistent", func(t *testing.T) {
		o := newTestOrder(t)
		staff := dispatchOrder(t, o)

		_, err := o.ContinueBaki(staff, dec("100"), nil, time.Now())
		require.NoError(t, err)

		require.NoError(t, o.RouteCare(order.StatusBaki, time.Now()))
		assert.Equal(t, order.StatusBaki, o.Status())
		assert.Equal(t, order.PaymentPartialPaid, o.PaymentStatus())
	})

	t.Run("rejects non-care request types", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.RouteCare(order.StatusCancelled, time.Now()))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trips aggregate state", func(t *testing.T) {
		productID := kernel.NewUUID()
		line, err := order.RestoreLineItem(productID, 24, 12, testPrices(24),
			order.QuantitySummary{OrderedQuantity: 24, SoldQuantity: 10},
			false, nil, "")
		require.NoError(t, err)

		id := kernel.NewUUID()
		now := time.Now()
		refs := validRefs()

		o, err := order.RestoreOrder(id, "R1-D1-9", refs, []*order.LineItem{line},
			order.StatusBaki, order.PaymentPartialPaid,
			dec("235.2"), dec("100"), now, now, nil, nil, "")

		require.NoError(t, err)
		assert.Equal(t, order.StatusBaki, o.Status())
		assert.Equal(t, order.PaymentPartialPaid, o.PaymentStatus())
		assert.True(t, o.CollectedAmount().Equal(dec("100")))

		restored, err := o.Line(productID)
		require.NoError(t, err)
		assert.Equal(t, 10, restored.Summary().SoldQuantity)
	})

	t.Run("rejects invalid persisted status", func(t *testing.T) {
		line, err := order.NewLineItem(kernel.NewUUID(), 24, 12, testPrices(24), false)
		require.NoError(t, err)
		now := time.Now()

		_, err = order.RestoreOrder(kernel.NewUUID(), "R1-D1-10", validRefs(),
			[]*order.LineItem{line}, order.StatusUnknown, order.PaymentUnpaid,
			decimal.Zero, decimal.Zero, now, now, nil, nil, "")
		require.Error(t, err)
	})
}
