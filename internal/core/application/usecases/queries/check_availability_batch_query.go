package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCheckAvailabilityBatchQueryIsNotConstructed = errors.New(
	"CheckAvailabilityBatchQuery must be created via NewCheckAvailabilityBatchQuery constructor",
)

// CheckAvailabilityBatchQuery asks, for a set of menu items at once, whether
// any portion can still be reserved in the capacity window covering a
// delivery timestamp. Windows that have never been materialized report the
// configured default capacity with zero reservations.
type CheckAvailabilityBatchQuery struct { //nolint:recvcheck //using for validation
	menuItemIDs []kernel.UUID
	at          time.Time

	guard guard.ConstructorGuard
}

// NewCheckAvailabilityBatchQuery creates a validated batch availability
// query. At least one menu item id is required and the timestamp must be
// non-zero.
func NewCheckAvailabilityBatchQuery(
	menuItemIDs []kernel.UUID,
	at time.Time,
) (CheckAvailabilityBatchQuery, error) {
	q := CheckAvailabilityBatchQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setMenuItemIDs(menuItemIDs),
		q.setAt(at),
	); err != nil {
		return CheckAvailabilityBatchQuery{}, err
	}

	return q, nil
}

// MenuItemIDs returns the menu items being checked.
func (q CheckAvailabilityBatchQuery) MenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(q.menuItemIDs))
	copy(ids, q.menuItemIDs)
	return ids
}

// At returns the delivery timestamp whose window is checked.
func (q CheckAvailabilityBatchQuery) At() time.Time {
	return q.at
}

// Validate ensures the query was created through the constructor.
func (q CheckAvailabilityBatchQuery) Validate() error {
	return q.guard.Validate(ErrCheckAvailabilityBatchQueryIsNotConstructed)
}

func (q *CheckAvailabilityBatchQuery) setMenuItemIDs(menuItemIDs []kernel.UUID) error {
	if len(menuItemIDs) == 0 {
		return errs.NewValueIsRequiredError("menuItemIDs")
	}
	for _, id := range menuItemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	q.menuItemIDs = menuItemIDs
	return nil
}

func (q *CheckAvailabilityBatchQuery) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}
	q.at = at
	return nil
}

// CheckAvailabilityBatchQueryResponse maps each requested menu item to
// whether at least one portion remains in the window.
type CheckAvailabilityBatchQueryResponse struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Available   map[kernel.UUID]bool
}
