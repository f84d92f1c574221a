package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/roster"
	"fulfillment/internal/core/ports"
)

// AssignOrderStaffCommandHandler records which employee handles the cooking
// or delivery side of an order. The employee must exist in the directory but
// does not need to be on the day's roster: the roster is checked later, at
// transition time.
type AssignOrderStaffCommandHandler struct {
	uowFactory        OrderUoWFactory
	employeeDirectory ports.EmployeeDirectory
}

// NewAssignOrderStaffCommandHandler creates a handler for staff assignment.
func NewAssignOrderStaffCommandHandler(
	uowFactory OrderUoWFactory,
	employeeDirectory ports.EmployeeDirectory,
) AssignOrderStaffCommandHandler {
	return AssignOrderStaffCommandHandler{
		uowFactory:        uowFactory,
		employeeDirectory: employeeDirectory,
	}
}

// Handle processes the staff assignment command.
// Returns roster.UnknownEmployeeError when the id is not in the directory.
func (h AssignOrderStaffCommandHandler) Handle(ctx context.Context, cmd AssignOrderStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	exists, err := h.employeeDirectory.Exists(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}
	if !exists {
		return roster.NewUnknownEmployeeError(cmd.EmployeeID().String())
	}

	return retryStorage(ctx, func() error {
		return h.assign(ctx, cmd)
	})
}

func (h AssignOrderStaffCommandHandler) assign(ctx context.Context, cmd AssignOrderStaffCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Duty() {
	case roster.Cooking:
		err = o.AssignCooking(cmd.EmployeeID())
	case roster.Delivery:
		err = o.AssignDelivery(cmd.EmployeeID())
	default:
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
