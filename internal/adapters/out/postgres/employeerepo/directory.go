package employeerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// GormEmployeeDirectory implements EmployeeDirectory over the synced
// employee table.
type GormEmployeeDirectory struct {
	db *gorm.DB
}

// NewGormEmployeeDirectory creates a new GORM employee directory.
func NewGormEmployeeDirectory(db *gorm.DB) *GormEmployeeDirectory {
	return &GormEmployeeDirectory{db: db}
}

// Exists reports whether the id belongs to an active employee. Deactivated
// employees fail the check the same way unknown ids do.
func (d *GormEmployeeDirectory) Exists(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	if err := employeeID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := d.db.WithContext(ctx).
		Model(&EmployeeDTO{}).
		Where("id = ? AND active", employeeID.Bytes()).
		Count(&count).
		Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Role returns the role recorded for an active employee. Unknown or
// deactivated ids report ports.RoleNone.
func (d *GormEmployeeDirectory) Role(ctx context.Context, userID kernel.UUID) (ports.Role, error) {
	if err := userID.Validate(); err != nil {
		return ports.RoleNone, err
	}

	var dto EmployeeDTO
	if err := d.db.WithContext(ctx).
		First(&dto, "id = ? AND active", userID.Bytes()).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RoleNone, nil
		}
		return ports.RoleNone, err
	}

	return ports.Role(dto.Role), nil
}
