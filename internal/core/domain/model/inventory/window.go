package inventory

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrWindowIsNotConstructed is returned when a Window instance was not created
// through NewWindow or RestoreWindow.
var ErrWindowIsNotConstructed = errors.New("Window must be created via NewWindow or RestoreWindow constructor")

// Window is the inventory aggregate for one (menu item, time window) pair.
// It tracks how many portions of the item can be prepared for delivery inside
// the window (capacity) and how many are already committed to orders
// (reserved).
//
// Invariants:
//   - 0 <= reserved <= capacity
//   - capacity >= 0
//   - windows are never deleted; cancellations release reserved counts
//
// Windows are created lazily on first reservation attempt with a configured
// default capacity.
type Window struct {
	menuItemID kernel.UUID
	window     kernel.TimeWindow
	capacity   int
	reserved   int
	notes      string

	guard guard.ConstructorGuard
}

// NewWindow creates a fresh Window with no reservations.
func NewWindow(menuItemID kernel.UUID, window kernel.TimeWindow, capacity int) (*Window, error) {
	w := &Window{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setMenuItemID(menuItemID),
		w.setWindow(window),
		w.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWindow reconstructs a Window from persistence, re-checking the
// reserved-within-capacity invariant.
func RestoreWindow(
	menuItemID kernel.UUID,
	window kernel.TimeWindow,
	capacity int,
	reserved int,
	notes string,
) (*Window, error) {
	w, err := NewWindow(menuItemID, window, capacity)
	if err != nil {
		return nil, err
	}

	if reserved < 0 || reserved > capacity {
		return nil, errs.NewValueIsOutOfRangeError("reserved", reserved, 0, capacity)
	}

	w.reserved = reserved
	w.notes = notes
	return w, nil
}

// Validate ensures the Window was created through a constructor.
func (w *Window) Validate() error {
	if w == nil {
		return ErrWindowIsNotConstructed
	}
	return w.guard.Validate(ErrWindowIsNotConstructed)
}

// MenuItemID returns the menu item this window belongs to.
func (w *Window) MenuItemID() kernel.UUID {
	return w.menuItemID
}

// TimeWindow returns the covered time bucket.
func (w *Window) TimeWindow() kernel.TimeWindow {
	return w.window
}

// Capacity returns the total portions preparable in this window.
func (w *Window) Capacity() int {
	return w.capacity
}

// Reserved returns the portions already committed to orders.
func (w *Window) Reserved() int {
	return w.reserved
}

// Remaining returns the portions still available for reservation.
func (w *Window) Remaining() int {
	return w.capacity - w.reserved
}

// Notes returns the administrative notes attached to the window.
func (w *Window) Notes() string {
	return w.notes
}

// HasCapacity reports whether quantity portions can still be reserved.
func (w *Window) HasCapacity(quantity int) bool {
	return quantity > 0 && w.reserved+quantity <= w.capacity
}

// Reserve commits quantity portions of the window's capacity.
// Returns InsufficientCapacityError when the window cannot hold the request;
// the window is left unchanged on failure.
func (w *Window) Reserve(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if w.reserved+quantity > w.capacity {
		return NewInsufficientCapacityError(w.menuItemID.String(), quantity, w.reserved, w.capacity)
	}

	w.reserved += quantity
	return nil
}

// Release returns quantity portions to the window, used on order
// cancellation. Over-release is clamped at zero and reported via the
// returned flag instead of an error: it signals a prior bookkeeping bug,
// not a user-facing failure, and the caller logs it as an anomaly.
func (w *Window) Release(quantity int) (clamped bool, err error) {
	if quantity < 1 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if quantity > w.reserved {
		w.reserved = 0
		return true, nil
	}

	w.reserved -= quantity
	return false, nil
}

// Restock sets a new capacity for the window. The new capacity must be
// positive and must not undercut reservations already committed.
func (w *Window) Restock(newCapacity int, notes string) error {
	if newCapacity <= 0 || newCapacity < w.reserved {
		return NewInvalidCapacityError(w.menuItemID.String(), newCapacity, w.reserved)
	}

	w.capacity = newCapacity
	w.notes = notes
	return nil
}

func (w *Window) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	w.menuItemID = menuItemID
	return nil
}

func (w *Window) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	w.window = window
	return nil
}

func (w *Window) setCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is negative", capacity),
		)
	}
	w.capacity = capacity
	return nil
}
