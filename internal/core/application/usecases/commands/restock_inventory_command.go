package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRestockInventoryCommandIsNotConstructed = errors.New(
	"RestockInventoryCommand must be created via NewRestockInventoryCommand constructor",
)

// RestockInventoryCommand represents an operator's request to set a new
// capacity for one menu item in one time window.
type RestockInventoryCommand struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	windowAt    time.Time
	newCapacity int
	notes       string

	guard guard.ConstructorGuard
}

// NewRestockInventoryCommand creates a command to adjust window capacity.
// windowAt is any instant inside the target window; capacity validation
// against existing reservations happens in the aggregate.
func NewRestockInventoryCommand(
	menuItemID kernel.UUID,
	windowAt time.Time,
	newCapacity int,
	notes string,
) (RestockInventoryCommand, error) {
	cmd := RestockInventoryCommand{
		newCapacity: newCapacity,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setWindowAt(windowAt),
	); err != nil {
		return RestockInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockInventoryCommand) Validate() error {
	return c.guard.Validate(ErrRestockInventoryCommandIsNotConstructed)
}

// MenuItemID returns the menu item to restock.
func (c RestockInventoryCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// WindowAt returns an instant inside the target window.
func (c RestockInventoryCommand) WindowAt() time.Time {
	return c.windowAt
}

// NewCapacity returns the requested capacity.
func (c RestockInventoryCommand) NewCapacity() int {
	return c.newCapacity
}

// Notes returns the administrative note to attach to the window.
func (c RestockInventoryCommand) Notes() string {
	return c.notes
}

func (c *RestockInventoryCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("menuItemID", err)
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *RestockInventoryCommand) setWindowAt(windowAt time.Time) error {
	if windowAt.IsZero() {
		return errs.NewValueIsRequiredError("windowAt")
	}
	c.windowAt = windowAt
	return nil
}
