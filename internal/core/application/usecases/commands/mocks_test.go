package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/allocation"
	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/model/stock"
	"distribution/internal/core/ports"
)

// Shared testify mocks for the repository, directory and unit-of-work
// contracts. All handler tests in this package build on these.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Get(ctx context.Context, warehouseID, productID kernel.UUID) (*stock.Item, error) {
	args := m.Called(ctx, warehouseID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Item), args.Error(1)
}

func (m *MockStockRepository) Upsert(ctx context.Context, item *stock.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockRepository) Consume(ctx context.Context, warehouseID, productID kernel.UUID, amount int) error {
	args := m.Called(ctx, warehouseID, productID, amount)
	return args.Error(0)
}

func (m *MockStockRepository) Restock(ctx context.Context, warehouseID, productID kernel.UUID, amount int) error {
	args := m.Called(ctx, warehouseID, productID, amount)
	return args.Error(0)
}

func (m *MockStockRepository) AddPickupEvent(ctx context.Context, event *stock.PickupEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockAllocationRepository struct{ mock.Mock }

func (m *MockAllocationRepository) Add(ctx context.Context, record *allocation.DailyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAllocationRepository) Update(ctx context.Context, record *allocation.DailyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAllocationRepository) Get(
	ctx context.Context,
	warehouseID, productID, packerID kernel.UUID,
	day kernel.Day,
) (*allocation.DailyRecord, error) {
	args := m.Called(ctx, warehouseID, productID, packerID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.DailyRecord), args.Error(1)
}

func (m *MockAllocationRepository) GetForSale(
	ctx context.Context,
	deliveryStaffID, productID kernel.UUID,
	day kernel.Day,
) (*allocation.DailyRecord, error) {
	args := m.Called(ctx, deliveryStaffID, productID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.DailyRecord), args.Error(1)
}

type MockCareRepository struct{ mock.Mock }

func (m *MockCareRepository) Add(ctx context.Context, ticket *carecase.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockCareRepository) Update(ctx context.Context, ticket *carecase.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockCareRepository) Get(ctx context.Context, id kernel.UUID) (*carecase.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carecase.Ticket), args.Error(1)
}

func (m *MockCareRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*carecase.Ticket, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carecase.Ticket), args.Error(1)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) Retailer(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.PartyInfo), args.Error(1)
}

func (m *MockDirectory) Dealer(ctx context.Context, id kernel.UUID) (ports.DealerInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.DealerInfo), args.Error(1)
}

func (m *MockDirectory) Agent(ctx context.Context, id kernel.UUID) (ports.AgentInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.AgentInfo), args.Error(1)
}

func (m *MockDirectory) DeliveryStaff(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.PartyInfo), args.Error(1)
}

func (m *MockDirectory) Packer(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.PartyInfo), args.Error(1)
}

func (m *MockDirectory) Product(ctx context.Context, id kernel.UUID) (ports.ProductInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.ProductInfo), args.Error(1)
}

func (m *MockDirectory) Warehouse(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.PartyInfo), args.Error(1)
}

func (m *MockDirectory) Area(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.PartyInfo), args.Error(1)
}

// txMock implements the transaction lifecycle shared by all UoW mocks.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ txMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStockUoW struct{ txMock }

func (m *MockStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockOrderStockUoW struct{ txMock }

func (m *MockOrderStockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockOrderStockUoWFactory struct{ mock.Mock }

func (m *MockOrderStockUoWFactory) Create() commands.OrderStockUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStockUoW)
}

type MockStockAllocationUoW struct{ txMock }

func (m *MockStockAllocationUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockStockAllocationUoW) AllocationRepository() ports.AllocationRepository {
	args := m.Called()
	return args.Get(0).(ports.AllocationRepository)
}

type MockStockAllocationUoWFactory struct{ mock.Mock }

func (m *MockStockAllocationUoWFactory) Create() commands.StockAllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.StockAllocationUoW)
}

type MockOrderAllocationUoW struct{ txMock }

func (m *MockOrderAllocationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderAllocationUoW) AllocationRepository() ports.AllocationRepository {
	args := m.Called()
	return args.Get(0).(ports.AllocationRepository)
}

type MockOrderAllocationUoWFactory struct{ mock.Mock }

func (m *MockOrderAllocationUoWFactory) Create() commands.OrderAllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderAllocationUoW)
}

type MockCareUoW struct{ txMock }

func (m *MockCareUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCareUoW) CareRepository() ports.CareRepository {
	args := m.Called()
	return args.Get(0).(ports.CareRepository)
}

func (m *MockCareUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockCareUoWFactory struct{ mock.Mock }

func (m *MockCareUoWFactory) Create() commands.CareUoW {
	args := m.Called()
	return args.Get(0).(commands.CareUoW)
}
