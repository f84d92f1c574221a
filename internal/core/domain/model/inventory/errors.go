package inventory

import (
	"errors"
	"fmt"
)

// Sentinel errors for capacity violations. Use errors.Is to classify.
var (
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrInvalidCapacity      = errors.New("invalid capacity")
)

// InsufficientCapacityError reports that a reservation would push a window's
// reserved count past its capacity.
type InsufficientCapacityError struct {
	MenuItemID string
	Requested  int
	Reserved   int
	Capacity   int
}

// NewInsufficientCapacityError creates an InsufficientCapacityError for the
// given window state.
func NewInsufficientCapacityError(menuItemID string, requested, reserved, capacity int) *InsufficientCapacityError {
	return &InsufficientCapacityError{
		MenuItemID: menuItemID,
		Requested:  requested,
		Reserved:   reserved,
		Capacity:   capacity,
	}
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("%s: menu item %s (requested: %d, reserved: %d, capacity: %d)",
		ErrInsufficientCapacity, e.MenuItemID, e.Requested, e.Reserved, e.Capacity)
}

func (e *InsufficientCapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}

// InvalidCapacityError reports a restock to a capacity that is non-positive
// or below the already-committed reservations.
type InvalidCapacityError struct {
	MenuItemID  string
	NewCapacity int
	Reserved    int
}

// NewInvalidCapacityError creates an InvalidCapacityError for the given
// restock attempt.
func NewInvalidCapacityError(menuItemID string, newCapacity, reserved int) *InvalidCapacityError {
	return &InvalidCapacityError{MenuItemID: menuItemID, NewCapacity: newCapacity, Reserved: reserved}
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("%s: menu item %s (new capacity: %d, reserved: %d)",
		ErrInvalidCapacity, e.MenuItemID, e.NewCapacity, e.Reserved)
}

func (e *InvalidCapacityError) Unwrap() error {
	return ErrInvalidCapacity
}
