package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/roster"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMinHeadcount = 5

func futureDate(t *testing.T) kernel.Date {
	t.Helper()
	return kernel.DateFromTime(time.Now().AddDate(0, 0, 2))
}

func crew(n int) []kernel.UUID {
	out := make([]kernel.UUID, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, kernel.NewUUID())
	}
	return out
}

func TestAssignDailyRosterCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cooking := crew(5)
	delivery := crew(5)

	cmd, err := commands.NewAssignDailyRosterCommand(futureDate(t), cooking, delivery)
	require.NoError(t, err)

	directory := new(MockEmployeeDirectory)
	directory.On("Exists", ctx, mock.Anything).Return(true, nil).Times(10)

	var stored *roster.DayAssignment
	rosterRepo := new(MockRosterRepository)
	rosterRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*roster.DayAssignment")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*roster.DayAssignment) }).
		Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RosterRepository").Return(rosterRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRosterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDailyRosterCommandHandler(factory, directory, testMinHeadcount)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsAuthorized(cooking[0], roster.Cooking))
	assert.True(t, stored.IsAuthorized(delivery[0], roster.Delivery))
	directory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDailyRosterCommandHandler_Handle_UnknownEmployee(t *testing.T) {
	ctx := t.Context()
	cooking := crew(5)

	cmd, err := commands.NewAssignDailyRosterCommand(futureDate(t), cooking, crew(5))
	require.NoError(t, err)

	directory := new(MockEmployeeDirectory)
	directory.On("Exists", ctx, cooking[0]).Return(false, nil).Once()

	factory := new(MockRosterUoWFactory)

	h := commands.NewAssignDailyRosterCommandHandler(factory, directory, testMinHeadcount)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, roster.ErrUnknownEmployee)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDailyRosterCommandHandler_Handle_Understaffed(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAssignDailyRosterCommand(futureDate(t), crew(4), crew(5))
	require.NoError(t, err)

	directory := new(MockEmployeeDirectory)
	directory.On("Exists", ctx, mock.Anything).Return(true, nil).Times(9)

	factory := new(MockRosterUoWFactory)

	h := commands.NewAssignDailyRosterCommandHandler(factory, directory, testMinHeadcount)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, roster.ErrInsufficientStaff)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDailyRosterCommandHandler_Handle_DualDuty(t *testing.T) {
	ctx := t.Context()
	shared := kernel.NewUUID()
	cooking := append(crew(4), shared)
	delivery := append(crew(4), shared)

	cmd, err := commands.NewAssignDailyRosterCommand(futureDate(t), cooking, delivery)
	require.NoError(t, err)

	directory := new(MockEmployeeDirectory)
	directory.On("Exists", ctx, mock.Anything).Return(true, nil).Times(10)

	factory := new(MockRosterUoWFactory)

	h := commands.NewAssignDailyRosterCommandHandler(factory, directory, testMinHeadcount)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, roster.ErrDualAssignment)
}

func TestAssignDailyRosterCommandHandler_Handle_PastDate(t *testing.T) {
	ctx := t.Context()
	past := kernel.DateFromTime(time.Now().AddDate(0, 0, -2))

	cmd, err := commands.NewAssignDailyRosterCommand(past, crew(5), crew(5))
	require.NoError(t, err)

	directory := new(MockEmployeeDirectory)
	factory := new(MockRosterUoWFactory)

	h := commands.NewAssignDailyRosterCommandHandler(factory, directory, testMinHeadcount)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	directory.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}
