package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

func testActor(t *testing.T, role commands.Role) commands.Actor {
	t.Helper()

	actor, err := commands.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func actorWithID(t *testing.T, id kernel.UUID, role commands.Role) commands.Actor {
	t.Helper()

	actor, err := commands.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

// testLine builds a line priced at 120 per package of 12 with a 5% dealer
// and 2% agent commission.
func testLine(t *testing.T, productID kernel.UUID, quantity int, soldAtCreation bool) *order.LineItem {
	t.Helper()

	perPackage := decimal.NewFromInt(12)
	price := decimal.NewFromInt(120)
	dealerPrice := decimal.NewFromInt(114)
	agentPrice := decimal.NewFromFloat(117.6)
	qty := decimal.NewFromInt(int64(quantity))

	line, err := order.NewLineItem(productID, quantity, 12, order.LinePrices{
		Price:             price,
		DealerPrice:       dealerPrice,
		AgentPrice:        agentPrice,
		TotalAmount:       price.Div(perPackage).Mul(qty).Round(2),
		DealerTotalAmount: dealerPrice.Div(perPackage).Mul(qty).Round(2),
		AgentTotalAmount:  agentPrice.Div(perPackage).Mul(qty).Round(2),
	}, soldAtCreation)
	require.NoError(t, err)
	return line
}

func processingOrder(t *testing.T, productID kernel.UUID) *order.Order {
	t.Helper()

	agentID := kernel.NewUUID()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewBusinessID("R7", "D2", "A9", time.Now()),
		order.References{
			RetailerID: kernel.NewUUID(),
			AreaID:     kernel.NewUUID(),
			DealerID:   kernel.NewUUID(),
			AgentID:    &agentID,
		},
		[]*order.LineItem{testLine(t, productID, 24, false)},
		order.StatusProcessing,
		time.Now(),
	)
	require.NoError(t, err)
	return aggregate
}

func dispatchedOrder(t *testing.T, staffID, productID kernel.UUID) *order.Order {
	t.Helper()

	aggregate := processingOrder(t, productID)
	require.NoError(t, aggregate.Dispatch(staffID, kernel.NewUUID(), time.Now()))
	return aggregate
}
