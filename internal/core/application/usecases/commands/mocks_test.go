package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/roster"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

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

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) GetOrCreate(
	ctx context.Context, menuItemID kernel.UUID, window kernel.TimeWindow, defaultCapacity int,
) (*inventory.Window, error) {
	args := m.Called(ctx, menuItemID, window, defaultCapacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Window), args.Error(1)
}

func (m *MockInventoryRepository) Get(
	ctx context.Context, menuItemID kernel.UUID, window kernel.TimeWindow,
) (*inventory.Window, error) {
	args := m.Called(ctx, menuItemID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Window), args.Error(1)
}

func (m *MockInventoryRepository) GetForUpdate(
	ctx context.Context, menuItemID kernel.UUID, window kernel.TimeWindow,
) (*inventory.Window, error) {
	args := m.Called(ctx, menuItemID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Window), args.Error(1)
}

func (m *MockInventoryRepository) Update(ctx context.Context, w *inventory.Window) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

type MockRosterRepository struct{ mock.Mock }

func (m *MockRosterRepository) Upsert(ctx context.Context, a *roster.DayAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRosterRepository) GetByDate(ctx context.Context, date kernel.Date) (*roster.DayAssignment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.DayAssignment), args.Error(1)
}

// MockUoW satisfies every unit of work composition used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) RosterRepository() ports.RosterRepository {
	args := m.Called()
	return args.Get(0).(ports.RosterRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockRosterUoWFactory struct{ mock.Mock }

func (m *MockRosterUoWFactory) Create() commands.RosterUoW {
	args := m.Called()
	return args.Get(0).(commands.RosterUoW)
}

type MockOrderInventoryUoWFactory struct{ mock.Mock }

func (m *MockOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderInventoryUoW)
}

type MockOrderRosterUoWFactory struct{ mock.Mock }

func (m *MockOrderRosterUoWFactory) Create() commands.OrderRosterUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderRosterUoW)
}

type MockCatalogStore struct{ mock.Mock }

func (m *MockCatalogStore) GetDinner(ctx context.Context, id kernel.UUID) (*catalog.Dinner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Dinner), args.Error(1)
}

func (m *MockCatalogStore) GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]*catalog.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.MenuItem), args.Error(1)
}

type MockEmployeeDirectory struct{ mock.Mock }

func (m *MockEmployeeDirectory) Exists(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeDirectory) Role(ctx context.Context, userID kernel.UUID) (ports.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.Role), args.Error(1)
}

type MockLoyaltyProvider struct{ mock.Mock }

func (m *MockLoyaltyProvider) CompletedOrderCount(ctx context.Context, customerID kernel.UUID) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}
