package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignOrderStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cook := kernel.NewUUID()
	o := newStoredOrder(t, kernel.NewUUID())

	cmd, err := commands.NewAssignOrderStaffCommand(o.ID(), cook, roster.Cooking)
	require.NoError(t, err)

	directory := new(MockEmployeeDirectory)
	directory.On("Exists", ctx, cook).Return(true, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderStaffCommandHandler(factory, directory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, o.CookingEmployee())
	assert.True(t, cook.IsEqual(*o.CookingEmployee()))
	directory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignOrderStaffCommandHandler_Handle_UnknownEmployee(t *testing.T) {
	ctx := t.Context()
	stranger := kernel.NewUUID()
	o := newStoredOrder(t, kernel.NewUUID())

	cmd, err := commands.NewAssignOrderStaffCommand(o.ID(), stranger, roster.Delivery)
	require.NoError(t, err)

	directory := new(MockEmployeeDirectory)
	directory.On("Exists", ctx, stranger).Return(false, nil).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewAssignOrderStaffCommandHandler(factory, directory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, roster.ErrUnknownEmployee)
	factory.AssertNotCalled(t, "Create")
}

func TestNewAssignOrderStaffCommand_RejectsUnknownDuty(t *testing.T) {
	_, err := commands.NewAssignOrderStaffCommand(kernel.NewUUID(), kernel.NewUUID(), roster.UnknownDuty)
	require.Error(t, err)
}
