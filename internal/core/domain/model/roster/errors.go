package roster

import (
	"errors"
	"fmt"
)

// Sentinel errors for roster rule violations. Use errors.Is to classify.
var (
	ErrDualAssignment    = errors.New("employee assigned to both duties")
	ErrInsufficientStaff = errors.New("insufficient staff")
	ErrUnknownEmployee   = errors.New("unknown employee")
)

// DualAssignmentError reports an employee present in both the cooking and the
// delivery set for the same date.
type DualAssignmentError struct {
	EmployeeID string
	Date       string
}

// NewDualAssignmentError creates a DualAssignmentError for the conflicting employee.
func NewDualAssignmentError(employeeID, date string) *DualAssignmentError {
	return &DualAssignmentError{EmployeeID: employeeID, Date: date}
}

func (e *DualAssignmentError) Error() string {
	return fmt.Sprintf("%s: employee %s on %s", ErrDualAssignment, e.EmployeeID, e.Date)
}

func (e *DualAssignmentError) Unwrap() error {
	return ErrDualAssignment
}

// InsufficientStaffError reports a duty set below the configured minimum headcount.
type InsufficientStaffError struct {
	Duty     Duty
	Assigned int
	Required int
}

// NewInsufficientStaffError creates an InsufficientStaffError for the understaffed duty.
func NewInsufficientStaffError(duty Duty, assigned, required int) *InsufficientStaffError {
	return &InsufficientStaffError{Duty: duty, Assigned: assigned, Required: required}
}

func (e *InsufficientStaffError) Error() string {
	return fmt.Sprintf("%s: %s duty has %d of %d required employees",
		ErrInsufficientStaff, e.Duty, e.Assigned, e.Required)
}

func (e *InsufficientStaffError) Unwrap() error {
	return ErrInsufficientStaff
}

// UnknownEmployeeError reports an id that does not resolve to an approved
// employee in the directory.
type UnknownEmployeeError struct {
	EmployeeID string
}

// NewUnknownEmployeeError creates an UnknownEmployeeError for the unresolved id.
func NewUnknownEmployeeError(employeeID string) *UnknownEmployeeError {
	return &UnknownEmployeeError{EmployeeID: employeeID}
}

func (e *UnknownEmployeeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownEmployee, e.EmployeeID)
}

func (e *UnknownEmployeeError) Unwrap() error {
	return ErrUnknownEmployee
}
