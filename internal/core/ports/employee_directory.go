package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Role is the access level the staff registry reports for a user.
type Role string

const (
	// RoleAdmin marks operators who may act on any order.
	RoleAdmin Role = "admin"

	// RoleStaff marks regular kitchen and delivery employees.
	RoleStaff Role = "staff"

	// RoleNone is reported for ids the registry does not know.
	RoleNone Role = ""
)

// EmployeeDirectory provides read-only access to the staff registry owned by
// the HR system.
type EmployeeDirectory interface {
	// Exists reports whether the id belongs to an active employee.
	Exists(ctx context.Context, employeeID kernel.UUID) (bool, error)

	// Role returns the role of an active employee. Unknown or deactivated
	// ids report RoleNone rather than an error.
	Role(ctx context.Context, userID kernel.UUID) (Role, error)
}
