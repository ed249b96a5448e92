package cmd

import (
	"restobot/internal/adapters/in/tools"
	"restobot/internal/adapters/out/postgres"
	"restobot/internal/adapters/out/postgres/menurepo"
	"restobot/internal/core/application/usecases/commands"
	"restobot/internal/core/application/usecases/queries"
	"restobot/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateMenuCatalog() *menurepo.GormMenuCatalog {
	return menurepo.NewGormMenuCatalog(c.gormDB)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.CreateMenuCatalog(), nil)
}

func (c *CompositionRoot) CreateModifyOrderCommandHandler() commands.ModifyOrderCommandHandler {
	return commands.NewModifyOrderCommandHandler(c.orderUoWFactory(), c.CreateMenuCatalog(), nil)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), nil)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), nil)
}

func (c *CompositionRoot) CreateBrowseMenuQueryHandler() queries.BrowseMenuQueryHandler {
	return queries.NewBrowseMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEstimateDeliveryQueryHandler() queries.EstimateDeliveryQueryHandler {
	return queries.NewEstimateDeliveryQueryHandler(c.gormDB, services.NewDeliveryEstimator(nil))
}

func (c *CompositionRoot) CreateToolFacade() *tools.Facade {
	return tools.NewFacade(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateModifyOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateBrowseMenuQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateEstimateDeliveryQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
