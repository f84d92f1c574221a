package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles employee-driven status transitions.
//
// Every transition is authorized against the committed duty roster for the
// order's delivery date: kitchen transitions require cooking duty, courier
// transitions require delivery duty. The order row is locked for the length
// of the transaction so concurrent transitions on the same order serialize.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderRosterUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderRosterUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
//
// Returns order.UnauthorizedTransitionError when the employee does not hold
// the required duty on the delivery date (including when no roster was
// committed for that date at all), and order.IllegalTransitionError when the
// state machine forbids the move.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryStorage(ctx, func() error {
		return h.transition(ctx, cmd)
	})
}

func (h ChangeOrderStatusCommandHandler) transition(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	// The command constructor only admits employee-driven targets, so every
	// transition taken here is authorized against the roster.
	duty, _ := order.RequiredDuty(cmd.Target())
	deliveryDate := o.DeliveryDate()

	dayRoster, err := uow.RosterRepository().GetByDate(ctx, deliveryDate)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.NewUnauthorizedTransitionError(
			cmd.OrderID().String(), cmd.EmployeeID().String(), duty.String(), deliveryDate.String())
	}
	if err != nil {
		return err
	}

	if !dayRoster.IsAuthorized(cmd.EmployeeID(), duty) {
		return order.NewUnauthorizedTransitionError(
			cmd.OrderID().String(), cmd.EmployeeID().String(), duty.String(), deliveryDate.String())
	}

	if err = o.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	switch cmd.Target() {
	case order.Cooking:
		err = o.AssignCooking(cmd.EmployeeID())
	case order.OutForDelivery:
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
