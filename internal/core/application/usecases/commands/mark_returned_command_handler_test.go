package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/allocation"
	"distribution/internal/core/domain/model/kernel"
)

func TestMarkReturnedCommandHandler_Handle_RestocksUnsoldRemainder(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, commands.RolePacker)
	warehouseID := kernel.NewUUID()
	productID := kernel.NewUUID()
	packerID := kernel.NewUUID()
	day := kernel.DayOf(time.Now())

	record, err := allocation.NewDailyRecord(
		packerID, kernel.NewUUID(), warehouseID, productID, kernel.NewUUID(), day, 40,
	)
	require.NoError(t, err)
	require.NoError(t, record.AddSale(25))

	cmd, err := commands.NewMarkReturnedCommand(actor, warehouseID, productID, packerID, day)
	require.NoError(t, err)

	allocationRepo := new(MockAllocationRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockStockAllocationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AllocationRepository").Return(allocationRepo).Once(),
		allocationRepo.On("Get", mock.Anything, warehouseID, productID, packerID, day).
			Return(record, nil).Once(),
		allocationRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("Restock", mock.Anything, warehouseID, productID, 15).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReturnedCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, record.IsReturned())
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkReturnedCommandHandler_Handle_NothingUnsold_SkipsRestock(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, commands.RolePacker)
	warehouseID := kernel.NewUUID()
	productID := kernel.NewUUID()
	packerID := kernel.NewUUID()
	day := kernel.DayOf(time.Now())

	record, err := allocation.NewDailyRecord(
		packerID, kernel.NewUUID(), warehouseID, productID, kernel.NewUUID(), day, 40,
	)
	require.NoError(t, err)
	require.NoError(t, record.AddSale(40))

	cmd, err := commands.NewMarkReturnedCommand(actor, warehouseID, productID, packerID, day)
	require.NoError(t, err)

	allocationRepo := new(MockAllocationRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockStockAllocationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AllocationRepository").Return(allocationRepo).Once(),
		allocationRepo.On("Get", mock.Anything, warehouseID, productID, packerID, day).
			Return(record, nil).Once(),
		allocationRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReturnedCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	stockRepo.AssertNotCalled(t, "Restock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
