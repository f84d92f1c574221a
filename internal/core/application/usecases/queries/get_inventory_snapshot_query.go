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
	ErrGetInventorySnapshotQueryIsNotConstructed = errors.New(
		"GetInventorySnapshotQuery must be created via NewGetInventorySnapshotQuery constructor",
	)
)

// GetInventorySnapshotQuery lists all materialized capacity windows starting
// inside a time range. Windows that never saw a reservation or restock are
// absent from the snapshot; they implicitly sit at the default capacity.
//
// Example:
//
//	from := time.Now()
//	query, err := NewGetInventorySnapshotQuery(from, from.Add(24*time.Hour))
//	if err != nil {
//	    return err
//	}
//
//	snapshot, err := handler.Handle(ctx, query)
type GetInventorySnapshotQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetInventorySnapshotQuery creates a validated snapshot query for the
// half-open range [from, to).
func NewGetInventorySnapshotQuery(from, to time.Time) (GetInventorySnapshotQuery, error) {
	q := GetInventorySnapshotQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(q.setFrom(from), q.setTo(to)); err != nil {
		return GetInventorySnapshotQuery{}, err
	}

	if !q.to.After(q.from) {
		return GetInventorySnapshotQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"range",
			fmt.Errorf("to %s is not after from %s", to, from),
		)
	}

	return q, nil
}

// From returns the inclusive lower bound of the range.
func (q GetInventorySnapshotQuery) From() time.Time {
	return q.from
}

// To returns the exclusive upper bound of the range.
func (q GetInventorySnapshotQuery) To() time.Time {
	return q.to
}

// Validate ensures the query was created through the constructor.
func (q GetInventorySnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetInventorySnapshotQueryIsNotConstructed)
}

func (q *GetInventorySnapshotQuery) setFrom(from time.Time) error {
	if from.IsZero() {
		return errs.NewValueIsRequiredError("from")
	}
	q.from = from
	return nil
}

func (q *GetInventorySnapshotQuery) setTo(to time.Time) error {
	if to.IsZero() {
		return errs.NewValueIsRequiredError("to")
	}
	q.to = to
	return nil
}

// GetInventorySnapshotQueryResponse is one materialized capacity window.
type GetInventorySnapshotQueryResponse struct {
	MenuItemID  kernel.UUID
	WindowStart time.Time
	WindowEnd   time.Time
	Capacity    int
	Reserved    int
	Remaining   int
	Notes       string
}
