package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/roster"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignOrderStaffCommandIsNotConstructed = errors.New(
	"AssignOrderStaffCommand must be created via NewAssignOrderStaffCommand constructor",
)

// AssignOrderStaffCommand represents a request to record which employee
// handles one side of an order. The record is informational: the daily duty
// roster, not this assignment, authorizes status transitions.
type AssignOrderStaffCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	employeeID kernel.UUID
	duty       roster.Duty

	guard guard.ConstructorGuard
}

// NewAssignOrderStaffCommand creates a command to record a staff assignment
// on an order.
func NewAssignOrderStaffCommand(
	orderID, employeeID kernel.UUID, duty roster.Duty,
) (AssignOrderStaffCommand, error) {
	cmd := AssignOrderStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmployeeID(employeeID),
		cmd.setDuty(duty),
	); err != nil {
		return AssignOrderStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderStaffCommandIsNotConstructed)
}

// OrderID returns the order to annotate.
func (c AssignOrderStaffCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the employee to record.
func (c AssignOrderStaffCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Duty returns which side of the order the employee handles.
func (c AssignOrderStaffCommand) Duty() roster.Duty {
	return c.duty
}

func (c *AssignOrderStaffCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignOrderStaffCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("employeeID", err)
	}
	c.employeeID = employeeID
	return nil
}

func (c *AssignOrderStaffCommand) setDuty(duty roster.Duty) error {
	if err := duty.Validate(); err != nil {
		return err
	}
	c.duty = duty
	return nil
}
