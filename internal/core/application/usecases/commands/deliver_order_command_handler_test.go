package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/allocation"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
)

func staffAllocation(t *testing.T, staffID, productID kernel.UUID, outQuantity int) *allocation.DailyRecord {
	t.Helper()

	record, err := allocation.NewDailyRecord(
		kernel.NewUUID(), staffID, kernel.NewUUID(), productID,
		kernel.NewUUID(), kernel.DayOf(time.Now()), outQuantity,
	)
	require.NoError(t, err)
	return record
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	staffID := kernel.NewUUID()
	productID := kernel.NewUUID()
	actor := actorWithID(t, staffID, commands.RoleDeliveryStaff)
	aggregate := dispatchedOrder(t, staffID, productID)
	record := staffAllocation(t, staffID, productID, 40)

	cmd, err := commands.NewDeliverOrderCommand(
		actor, aggregate.ID(),
		decimal.NewFromFloat(235.2), decimal.NewFromFloat(235.2),
		map[string]int{productID.String(): 24},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	allocationRepo := new(MockAllocationRepository)
	uow := new(MockOrderAllocationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AllocationRepository").Return(allocationRepo).Once(),
		allocationRepo.On("GetForSale", mock.Anything, staffID, productID, mock.AnythingOfType("kernel.Day")).
			Return(record, nil).Once(),
		allocationRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.StatusDelivered, aggregate.Status())
	assert.Equal(t, order.PaymentPaid, aggregate.PaymentStatus())
	assert.Equal(t, 24, record.SellQuantity())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	allocationRepo.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_CarryOverAllocation(t *testing.T) {
	ctx := t.Context()
	staffID := kernel.NewUUID()
	productID := kernel.NewUUID()
	actor := actorWithID(t, staffID, commands.RoleDeliveryStaff)
	aggregate := dispatchedOrder(t, staffID, productID)

	// Stock packed out the day before and still in the staff's hands.
	record, err := allocation.NewDailyRecord(
		kernel.NewUUID(), staffID, kernel.NewUUID(), productID,
		kernel.NewUUID(), kernel.DayOf(time.Now().AddDate(0, 0, -1)), 40,
	)
	require.NoError(t, err)

	cmd, err := commands.NewDeliverOrderCommand(
		actor, aggregate.ID(),
		decimal.NewFromFloat(235.2), decimal.NewFromFloat(235.2),
		map[string]int{productID.String(): 24},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	allocationRepo := new(MockAllocationRepository)
	uow := new(MockOrderAllocationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AllocationRepository").Return(allocationRepo).Once(),
		allocationRepo.On("GetForSale", mock.Anything, staffID, productID, mock.AnythingOfType("kernel.Day")).
			Return(record, nil).Once(),
		allocationRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.StatusDelivered, aggregate.Status())
	assert.Equal(t, 24, record.SellQuantity())
	uow.AssertExpectations(t)
	allocationRepo.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_NotAssignee_Forbidden(t *testing.T) {
	ctx := t.Context()
	staffID := kernel.NewUUID()
	productID := kernel.NewUUID()
	intruder := testActor(t, commands.RoleDeliveryStaff)
	aggregate := dispatchedOrder(t, staffID, productID)

	cmd, err := commands.NewDeliverOrderCommand(
		intruder, aggregate.ID(),
		decimal.NewFromFloat(235.2), decimal.NewFromFloat(235.2),
		map[string]int{productID.String(): 24},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderAllocationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.StatusDispatched, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeliverOrderCommandHandler_Handle_AllocationFailure_RollsBack(t *testing.T) {
	ctx := t.Context()
	staffID := kernel.NewUUID()
	productID := kernel.NewUUID()
	actor := actorWithID(t, staffID, commands.RoleDeliveryStaff)
	aggregate := dispatchedOrder(t, staffID, productID)

	cmd, err := commands.NewDeliverOrderCommand(
		actor, aggregate.ID(),
		decimal.NewFromFloat(235.2), decimal.NewFromFloat(235.2),
		map[string]int{productID.String(): 24},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	allocationRepo := new(MockAllocationRepository)
	uow := new(MockOrderAllocationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AllocationRepository").Return(allocationRepo).Once(),
		allocationRepo.On("GetForSale", mock.Anything, staffID, productID, mock.AnythingOfType("kernel.Day")).
			Return(nil, errs.NewObjectNotFoundError("dailyRecord", productID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
