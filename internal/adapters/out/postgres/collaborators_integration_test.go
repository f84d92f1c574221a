package postgres_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/employeerepo"
	"fulfillment/internal/adapters/out/postgres/loyaltyrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CollaboratorsIntegrationTestSuite exercises the read-only adapters that
// back the catalog, employee directory, and loyalty ports.
type CollaboratorsIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	catalogStore *catalogrepo.GormCatalogStore
	directory    *employeerepo.GormEmployeeDirectory
	loyalty      *loyaltyrepo.GormLoyaltyProvider
}

func (suite *CollaboratorsIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&catalogrepo.DinnerDTO{},
		&catalogrepo.DinnerComponentDTO{},
		&catalogrepo.MenuItemDTO{},
		&employeerepo.EmployeeDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.catalogStore = catalogrepo.NewGormCatalogStore(db)
	suite.directory = employeerepo.NewGormEmployeeDirectory(db)
	suite.loyalty = loyaltyrepo.NewGormLoyaltyProvider(db)
}

func (suite *CollaboratorsIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE dinners, dinner_components, menu_items, employees, orders, order_items",
	).Error
	suite.Require().NoError(err)
}

func (suite *CollaboratorsIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CollaboratorsIntegrationTestSuite) TestCatalogStore_GetDinner() {
	ctx := context.Background()
	dinnerID := uuid.New()
	wineID := uuid.New()

	suite.Require().NoError(suite.db.Create(&catalogrepo.DinnerDTO{
		ID:            dinnerID,
		Name:          "Harvest Feast",
		BasePrice:     60000,
		AllowedStyles: "grand,deluxe",
		Components: []catalogrepo.DinnerComponentDTO{
			{DinnerID: dinnerID, MenuItemID: wineID, Quantity: 2},
		},
	}).Error)

	id, err := kernel.UUIDFromBytes(dinnerID[:])
	suite.Require().NoError(err)

	dinner, err := suite.catalogStore.GetDinner(ctx, id)
	suite.Require().NoError(err)

	suite.Equal("Harvest Feast", dinner.Name())
	suite.Equal(kernel.Money(60000), dinner.BasePrice())
	suite.False(dinner.AllowsStyle(catalog.Simple))
	suite.True(dinner.AllowsStyle(catalog.Grand))
	suite.Require().Len(dinner.Components(), 1)
	suite.Equal(2, dinner.Components()[0].Quantity)
}

func (suite *CollaboratorsIntegrationTestSuite) TestCatalogStore_GetDinner_EmptyStylesMeansAll() {
	ctx := context.Background()
	dinnerID := uuid.New()

	suite.Require().NoError(suite.db.Create(&catalogrepo.DinnerDTO{
		ID:        dinnerID,
		Name:      "Weeknight Supper",
		BasePrice: 30000,
	}).Error)

	id, err := kernel.UUIDFromBytes(dinnerID[:])
	suite.Require().NoError(err)

	dinner, err := suite.catalogStore.GetDinner(ctx, id)
	suite.Require().NoError(err)

	for _, style := range catalog.AllServingStyles() {
		suite.True(dinner.AllowsStyle(style))
	}
}

func (suite *CollaboratorsIntegrationTestSuite) TestCatalogStore_GetDinner_NotFound() {
	_, err := suite.catalogStore.GetDinner(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CollaboratorsIntegrationTestSuite) TestCatalogStore_GetMenuItems_OmitsUnknownIDs() {
	ctx := context.Background()
	knownID := uuid.New()

	suite.Require().NoError(suite.db.Create(&catalogrepo.MenuItemDTO{
		ID:       knownID,
		Name:     "House Red",
		Price:    4500,
		Category: "alcohol",
	}).Error)

	known, err := kernel.UUIDFromBytes(knownID[:])
	suite.Require().NoError(err)

	items, err := suite.catalogStore.GetMenuItems(ctx, []kernel.UUID{known, kernel.NewUUID()})
	suite.Require().NoError(err)

	suite.Require().Len(items, 1)
	suite.Equal("House Red", items[0].Name())
	suite.Equal(kernel.Money(4500), items[0].Price())
	suite.Equal("alcohol", items[0].Category())
}

func (suite *CollaboratorsIntegrationTestSuite) TestCatalogStore_GetMenuItems_EmptyInput() {
	items, err := suite.catalogStore.GetMenuItems(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *CollaboratorsIntegrationTestSuite) TestEmployeeDirectory_Exists() {
	ctx := context.Background()
	activeID := uuid.New()
	inactiveID := uuid.New()

	suite.Require().NoError(suite.db.Create(&employeerepo.EmployeeDTO{
		ID: activeID, Name: "Ada", Role: "staff", Active: true,
	}).Error)
	suite.Require().NoError(suite.db.Create(&employeerepo.EmployeeDTO{
		ID: inactiveID, Name: "Bob", Role: "staff", Active: false,
	}).Error)

	active, err := kernel.UUIDFromBytes(activeID[:])
	suite.Require().NoError(err)
	inactive, err := kernel.UUIDFromBytes(inactiveID[:])
	suite.Require().NoError(err)

	exists, err := suite.directory.Exists(ctx, active)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.directory.Exists(ctx, inactive)
	suite.Require().NoError(err)
	suite.False(exists, "Deactivated employees should not resolve")

	exists, err = suite.directory.Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *CollaboratorsIntegrationTestSuite) TestEmployeeDirectory_Role() {
	ctx := context.Background()
	adminID := uuid.New()
	inactiveAdminID := uuid.New()

	suite.Require().NoError(suite.db.Create(&employeerepo.EmployeeDTO{
		ID: adminID, Name: "Cleo", Role: "admin", Active: true,
	}).Error)
	suite.Require().NoError(suite.db.Create(&employeerepo.EmployeeDTO{
		ID: inactiveAdminID, Name: "Drew", Role: "admin", Active: false,
	}).Error)

	admin, err := kernel.UUIDFromBytes(adminID[:])
	suite.Require().NoError(err)
	inactiveAdmin, err := kernel.UUIDFromBytes(inactiveAdminID[:])
	suite.Require().NoError(err)

	role, err := suite.directory.Role(ctx, admin)
	suite.Require().NoError(err)
	suite.Equal(ports.RoleAdmin, role)

	role, err = suite.directory.Role(ctx, inactiveAdmin)
	suite.Require().NoError(err)
	suite.Equal(ports.RoleNone, role, "Deactivated admins lose their role")

	role, err = suite.directory.Role(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Equal(ports.RoleNone, role)
}

func (suite *CollaboratorsIntegrationTestSuite) TestLoyaltyProvider_CountsDeliveredPaidOrders() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	suite.seedOrder(customerID, order.Delivered, true)
	suite.seedOrder(customerID, order.Delivered, true)
	suite.seedOrder(customerID, order.Delivered, false)
	suite.seedOrder(customerID, order.Pending, false)
	suite.seedOrder(kernel.NewUUID(), order.Delivered, true)

	count, err := suite.loyalty.CompletedOrderCount(ctx, customerID)

	suite.Require().NoError(err)
	suite.Equal(2, count)
}

func (suite *CollaboratorsIntegrationTestSuite) TestLoyaltyProvider_UnknownCustomerCountsZero() {
	count, err := suite.loyalty.CompletedOrderCount(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Equal(0, count)
}

func (suite *CollaboratorsIntegrationTestSuite) seedOrder(
	customerID kernel.UUID,
	status order.Status,
	paid bool,
) {
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
		ID:           uuid.New(),
		CustomerID:   customerID.Bytes(),
		DinnerID:     uuid.New(),
		ServingStyle: catalog.Simple.String(),
		WindowStart:  time.Date(2025, 9, 10, 18, 0, 0, 0, time.UTC),
		WindowEnd:    time.Date(2025, 9, 10, 19, 0, 0, 0, time.UTC),
		Address:      "12 Pike St",
		TotalPrice:   30000,
		Status:       status.String(),
		Paid:         paid,
		CreatedAt:    time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	}).Error)
}

func TestCollaboratorsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CollaboratorsIntegrationTestSuite))
}
