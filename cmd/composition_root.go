package cmd

import (
	"distribution/internal/adapters/out/postgres"
	"distribution/internal/adapters/out/postgres/masterdata"
	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	directory  ports.Directory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  masterdata.NewGormDirectory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateCreateReadyOrderCommandHandler() commands.CreateReadyOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReadyOrderCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateDispatchOrdersCommandHandler() commands.DispatchOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrdersCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateUpdateOrderLineCommandHandler() commands.UpdateOrderLineCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderLineCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderAllocationUoWFactory = FuncOrderAllocationUoWFactory(func() commands.OrderAllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateContinueBakiOrderCommandHandler() commands.ContinueBakiOrderCommandHandler {
	var f commands.OrderAllocationUoWFactory = FuncOrderAllocationUoWFactory(func() commands.OrderAllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewContinueBakiOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPickupCommandHandler() commands.RecordPickupCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPickupCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPackOutCommandHandler() commands.RecordPackOutCommandHandler {
	var f commands.StockAllocationUoWFactory = FuncStockAllocationUoWFactory(func() commands.StockAllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPackOutCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkReturnedCommandHandler() commands.MarkReturnedCommandHandler {
	var f commands.StockAllocationUoWFactory = FuncStockAllocationUoWFactory(func() commands.StockAllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkReturnedCommandHandler(f)
}

func (c *CompositionRoot) CreateFileCareRequestCommandHandler() commands.FileCareRequestCommandHandler {
	var f commands.CareUoWFactory = FuncCareUoWFactory(func() commands.CareUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFileCareRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveCareRequestCommandHandler() commands.ResolveCareRequestCommandHandler {
	var f commands.CareUoWFactory = FuncCareUoWFactory(func() commands.CareUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveCareRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockLevelsQueryHandler() queries.GetStockLevelsQueryHandler {
	return queries.NewGetStockLevelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCollectionWorklistQueryHandler() queries.GetCollectionWorklistQueryHandler {
	return queries.NewGetCollectionWorklistQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncOrderStockUoWFactory func() commands.OrderStockUoW

func (f FuncOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return f()
}

type FuncStockAllocationUoWFactory func() commands.StockAllocationUoW

func (f FuncStockAllocationUoWFactory) Create() commands.StockAllocationUoW {
	return f()
}

type FuncOrderAllocationUoWFactory func() commands.OrderAllocationUoW

func (f FuncOrderAllocationUoWFactory) Create() commands.OrderAllocationUoW {
	return f()
}

type FuncCareUoWFactory func() commands.CareUoW

func (f FuncCareUoWFactory) Create() commands.CareUoW {
	return f()
}
