package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents an employee's request to move an order
// to the next lifecycle status.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	employeeID kernel.UUID
	target     order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to advance an order's status.
// Validates both ids and the target status; only employee-driven targets are
// accepted, so cancellation cannot enter through this command. Returns an
// error if any validation fails.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	employeeID kernel.UUID,
	target order.Status,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmployeeID(employeeID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the employee performing the transition.
func (c ChangeOrderStatusCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("employeeID", err)
	}
	c.employeeID = employeeID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if _, employeeDriven := order.RequiredDuty(target); !employeeDriven {
		return errs.NewValueIsInvalidErrorWithCause(
			"target status",
			fmt.Errorf("%s is not an employee-driven transition; cancellation goes through the cancel operation", target),
		)
	}
	c.target = target
	return nil
}
