package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	componentID := kernel.NewUUID()
	o := newStoredOrder(t, customerID)

	dinner, err := catalog.NewDinner(o.DinnerID(), "Family Feast", kernel.Money(60000), nil,
		[]catalog.Component{{MenuItemID: componentID, Quantity: 2}})
	require.NoError(t, err)

	reservedWindow, err := inventory.RestoreWindow(componentID, testWindow(t), 20, 5, "")
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID)
	require.NoError(t, err)

	catalogStore := new(MockCatalogStore)
	catalogStore.On("GetDinner", mock.Anything, o.DinnerID()).Return(dinner, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()

	inventoryRepo := new(MockInventoryRepository)
	inventoryRepo.On("GetForUpdate", mock.Anything, componentID, o.DeliveryWindow()).
		Return(reservedWindow, nil).Once()
	inventoryRepo.On("Update", mock.Anything, reservedWindow).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, catalogStore, new(MockEmployeeDirectory))
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, 3, reservedWindow.Reserved(), "cancellation must release the order's portions")
	inventoryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ForeignOrderReadsAsNotFound(t *testing.T) {
	ctx := t.Context()
	o := newStoredOrder(t, kernel.NewUUID())

	cmd, err := commands.NewCancelOrderCommand(o.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	directory := new(MockEmployeeDirectory)
	directory.On("Role", mock.Anything, mock.Anything).Return(ports.RoleStaff, nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockCatalogStore), directory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, order.Pending, o.Status())
	directory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OrderInProgress(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := newStoredOrder(t, customerID)
	require.NoError(t, o.ChangeStatus(order.Cooking))

	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockCatalogStore), new(MockEmployeeDirectory))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderAlreadyInProgress)
	assert.Equal(t, order.Cooking, o.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_MissingWindowSkipped(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	componentID := kernel.NewUUID()
	o := newStoredOrder(t, customerID)

	dinner, err := catalog.NewDinner(o.DinnerID(), "Family Feast", kernel.Money(60000), nil,
		[]catalog.Component{{MenuItemID: componentID, Quantity: 2}})
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID)
	require.NoError(t, err)

	catalogStore := new(MockCatalogStore)
	catalogStore.On("GetDinner", mock.Anything, o.DinnerID()).Return(dinner, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()

	inventoryRepo := new(MockInventoryRepository)
	inventoryRepo.On("GetForUpdate", mock.Anything, componentID, o.DeliveryWindow()).
		Return(nil, errs.NewObjectNotFoundError("window", componentID.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, catalogStore, new(MockEmployeeDirectory))
	err = h.Handle(ctx, cmd)

	require.NoError(t, err, "missing windows are anomalies, not cancellation failures")
	assert.Equal(t, order.Cancelled, o.Status())
}

func TestCancelOrderCommandHandler_Handle_AdminCancelsForeignOrder(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	componentID := kernel.NewUUID()
	o := newStoredOrder(t, kernel.NewUUID())

	dinner, err := catalog.NewDinner(o.DinnerID(), "Family Feast", kernel.Money(60000), nil,
		[]catalog.Component{{MenuItemID: componentID, Quantity: 2}})
	require.NoError(t, err)

	reservedWindow, err := inventory.RestoreWindow(componentID, testWindow(t), 20, 5, "")
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(o.ID(), adminID)
	require.NoError(t, err)

	catalogStore := new(MockCatalogStore)
	catalogStore.On("GetDinner", mock.Anything, o.DinnerID()).Return(dinner, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()

	inventoryRepo := new(MockInventoryRepository)
	inventoryRepo.On("GetForUpdate", mock.Anything, componentID, o.DeliveryWindow()).
		Return(reservedWindow, nil).Once()
	inventoryRepo.On("Update", mock.Anything, reservedWindow).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	directory := new(MockEmployeeDirectory)
	directory.On("Role", mock.Anything, adminID).Return(ports.RoleAdmin, nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, catalogStore, directory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, 3, reservedWindow.Reserved())
	directory.AssertExpectations(t)
}
