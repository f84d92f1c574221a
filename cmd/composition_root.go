package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/employeerepo"
	"fulfillment/internal/adapters/out/postgres/loyaltyrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config            Config
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	catalogStore      *catalogrepo.GormCatalogStore
	employeeDirectory *employeerepo.GormEmployeeDirectory
	loyaltyProvider   *loyaltyrepo.GormLoyaltyProvider
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:            config,
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB, config.RosterMinHeadcount),
		catalogStore:      catalogrepo.NewGormCatalogStore(gormDB),
		employeeDirectory: employeerepo.NewGormEmployeeDirectory(gormDB),
		loyaltyProvider:   loyaltyrepo.NewGormLoyaltyProvider(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderInventoryUoWFactory = FuncOrderInventoryUoWFactory(func() commands.OrderInventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		c.catalogStore,
		c.loyaltyProvider,
		c.config.InventoryDefaultCapacity,
		c.config.InventoryWindowLength,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderRosterUoWFactory = FuncOrderRosterUoWFactory(func() commands.OrderRosterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderInventoryUoWFactory = FuncOrderInventoryUoWFactory(func() commands.OrderInventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.catalogStore, c.employeeDirectory)
}

func (c *CompositionRoot) CreateModifyOrderItemsCommandHandler() commands.ModifyOrderItemsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewModifyOrderItemsCommandHandler(f, c.catalogStore)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderPaidCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderStaffCommandHandler() commands.AssignOrderStaffCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderStaffCommandHandler(f, c.employeeDirectory)
}

func (c *CompositionRoot) CreateRestockInventoryCommandHandler() commands.RestockInventoryCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockInventoryCommandHandler(
		f,
		c.config.InventoryDefaultCapacity,
		c.config.InventoryWindowLength,
	)
}

func (c *CompositionRoot) CreateAssignDailyRosterCommandHandler() commands.AssignDailyRosterCommandHandler {
	var f commands.RosterUoWFactory = FuncRosterUoWFactory(func() commands.RosterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDailyRosterCommandHandler(f, c.employeeDirectory, c.config.RosterMinHeadcount)
}

func (c *CompositionRoot) CreateCheckInventoryAvailabilityQueryHandler() queries.CheckInventoryAvailabilityQueryHandler {
	return queries.NewCheckInventoryAvailabilityQueryHandler(
		c.gormDB,
		c.config.InventoryDefaultCapacity,
		c.config.InventoryWindowLength,
	)
}

func (c *CompositionRoot) CreateCheckAvailabilityBatchQueryHandler() queries.CheckAvailabilityBatchQueryHandler {
	return queries.NewCheckAvailabilityBatchQueryHandler(
		c.gormDB,
		c.config.InventoryDefaultCapacity,
		c.config.InventoryWindowLength,
	)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventorySnapshotQueryHandler() queries.GetInventorySnapshotQueryHandler {
	return queries.NewGetInventorySnapshotQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDayRosterQueryHandler() queries.GetDayRosterQueryHandler {
	return queries.NewGetDayRosterQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDayRosterQueryHandler(),
		c.config.RosterMinHeadcount,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncRosterUoWFactory func() commands.RosterUoW

func (f FuncRosterUoWFactory) Create() commands.RosterUoW {
	return f()
}

type FuncOrderInventoryUoWFactory func() commands.OrderInventoryUoW

func (f FuncOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	return f()
}

type FuncOrderRosterUoWFactory func() commands.OrderRosterUoW

func (f FuncOrderRosterUoWFactory) Create() commands.OrderRosterUoW {
	return f()
}
