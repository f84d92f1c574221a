package queries

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCheckInventoryAvailabilityQueryIsNotConstructed = errors.New(
		"CheckInventoryAvailabilityQuery must be created via NewCheckInventoryAvailabilityQuery constructor",
	)
)

// CheckInventoryAvailabilityQuery asks whether a quantity of a menu item can
// still be reserved for the capacity window covering a delivery timestamp.
//
// Windows that have never been materialized report the configured default
// capacity with zero reservations, matching what a reservation attempt at
// that timestamp would see.
//
// Example:
//
//	query, err := NewCheckInventoryAvailabilityQuery(menuItemID, deliveryAt, 2)
//	if err != nil {
//	    return err
//	}
//
//	availability, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	if !availability.Available {
//	    fmt.Printf("only %d portions left in %s\n",
//	        availability.Remaining, availability.WindowStart)
//	}
type CheckInventoryAvailabilityQuery struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	at         time.Time
	quantity   int

	guard guard.ConstructorGuard
}

// NewCheckInventoryAvailabilityQuery creates a validated availability query.
// The timestamp must be non-zero and the quantity positive.
func NewCheckInventoryAvailabilityQuery(
	menuItemID kernel.UUID,
	at time.Time,
	quantity int,
) (CheckInventoryAvailabilityQuery, error) {
	q := CheckInventoryAvailabilityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setMenuItemID(menuItemID),
		q.setAt(at),
		q.setQuantity(quantity),
	); err != nil {
		return CheckInventoryAvailabilityQuery{}, err
	}

	return q, nil
}

// MenuItemID returns the menu item being checked.
func (q CheckInventoryAvailabilityQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}

// At returns the delivery timestamp whose window is checked.
func (q CheckInventoryAvailabilityQuery) At() time.Time {
	return q.at
}

// Quantity returns the number of portions being asked about.
func (q CheckInventoryAvailabilityQuery) Quantity() int {
	return q.quantity
}

// Validate ensures the query was created through the constructor.
func (q CheckInventoryAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckInventoryAvailabilityQueryIsNotConstructed)
}

func (q *CheckInventoryAvailabilityQuery) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	q.menuItemID = menuItemID
	return nil
}

func (q *CheckInventoryAvailabilityQuery) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}
	q.at = at
	return nil
}

func (q *CheckInventoryAvailabilityQuery) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	q.quantity = quantity
	return nil
}

// CheckInventoryAvailabilityQueryResponse describes the capacity window
// covering the requested timestamp and whether the asked quantity fits.
type CheckInventoryAvailabilityQueryResponse struct {
	MenuItemID  kernel.UUID
	WindowStart time.Time
	WindowEnd   time.Time
	Capacity    int
	Reserved    int
	Remaining   int
	Available   bool
}
