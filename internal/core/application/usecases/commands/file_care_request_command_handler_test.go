package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
)

func TestFileCareRequestCommandHandler_Handle_FirstIntake_CreatesTicket(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, commands.RoleCustomerCare)
	staffID := kernel.NewUUID()
	productID := kernel.NewUUID()
	aggregate := dispatchedOrder(t, staffID, productID)

	cmd, err := commands.NewFileCareRequestCommand(
		actor, aggregate.ID(), staffID, carecase.RequestTypePending, "customer not home",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	careRepo := new(MockCareRepository)
	uow := new(MockCareUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("CareRepository").Return(careRepo).Once(),
		careRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("ticket", aggregate.ID())).Once(),
		careRepo.On("Add", mock.Anything, mock.AnythingOfType("*carecase.Ticket")).
			Run(func(args mock.Arguments) {
				ticket := args.Get(1).(*carecase.Ticket)
				assert.Equal(t, aggregate.ID(), ticket.OrderID())
				assert.Equal(t, carecase.RequestTypePending, ticket.RequestType())
				assert.Equal(t, carecase.TicketStatusNew, ticket.Status())
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCareUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFileCareRequestCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, aggregate.Status())
	careRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFileCareRequestCommandHandler_Handle_RepeatIntake_RefilesSameTicket(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, commands.RoleCustomerCare)
	staffID := kernel.NewUUID()
	productID := kernel.NewUUID()
	aggregate := dispatchedOrder(t, staffID, productID)

	existing, err := carecase.NewTicket(
		kernel.NewUUID(), aggregate.ID(), aggregate.References().RetailerID,
		staffID, carecase.RequestTypePending, "customer not home", time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)

	cmd, err := commands.NewFileCareRequestCommand(
		actor, aggregate.ID(), staffID, carecase.RequestTypeBaki, "partial collection left",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	careRepo := new(MockCareRepository)
	uow := new(MockCareUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("CareRepository").Return(careRepo).Once(),
		careRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).Return(existing, nil).Once(),
		careRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCareUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFileCareRequestCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.StatusBaki, aggregate.Status())
	assert.Equal(t, carecase.RequestTypeBaki, existing.RequestType())
	assert.Equal(t, "partial collection left", existing.Reason())
	careRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
