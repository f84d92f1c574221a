package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestockInventoryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	menuItemID := kernel.NewUUID()
	w := newInventoryWindow(t, menuItemID, testDefaultCapacity)

	cmd, err := commands.NewRestockInventoryCommand(menuItemID, testDeliveryAt, 50, "friday delivery")
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	inventoryRepo.On("GetOrCreate", mock.Anything, menuItemID, testWindow(t), testDefaultCapacity).
		Return(w, nil).Once()
	inventoryRepo.On("Update", mock.Anything, w).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestockInventoryCommandHandler(factory, testDefaultCapacity, testWindowLength)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 50, w.Capacity())
	assert.Equal(t, "friday delivery", w.Notes())
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRestockInventoryCommandHandler_Handle_CannotShrinkBelowReserved(t *testing.T) {
	ctx := t.Context()
	menuItemID := kernel.NewUUID()
	w, err := inventory.RestoreWindow(menuItemID, testWindow(t), 20, 10, "")
	require.NoError(t, err)

	cmd, err := commands.NewRestockInventoryCommand(menuItemID, testDeliveryAt, 5, "")
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	inventoryRepo.On("GetOrCreate", mock.Anything, menuItemID, testWindow(t), testDefaultCapacity).
		Return(w, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestockInventoryCommandHandler(factory, testDefaultCapacity, testWindowLength)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, inventory.ErrInvalidCapacity)
	assert.Equal(t, 20, w.Capacity())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
