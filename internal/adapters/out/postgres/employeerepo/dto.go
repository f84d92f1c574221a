// Package employeerepo provides read-only access to the employee registry.
// Employee records are owned by the HR system and synced into a local table;
// the engine only checks membership.
package employeerepo

import (
	"github.com/google/uuid"
)

// EmployeeDTO represents one employee row.
type EmployeeDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Role   string `gorm:"type:varchar(16)"`
	Active bool
}

// TableName specifies the database table name for employees.
func (EmployeeDTO) TableName() string {
	return "employees"
}
