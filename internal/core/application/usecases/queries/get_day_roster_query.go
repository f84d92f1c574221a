package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetDayRosterQueryIsNotConstructed = errors.New(
		"GetDayRosterQuery must be created via NewGetDayRosterQuery constructor",
	)
)

// GetDayRosterQuery retrieves the duty roster for one service day. A day with
// no roster yields a response with empty duty lists rather than an error, so
// callers such as the staffing check can tell "no roster" from a failure.
type GetDayRosterQuery struct { //nolint:recvcheck //using for validation
	date kernel.Date

	guard guard.ConstructorGuard
}

// NewGetDayRosterQuery creates a validated roster query for a date.
func NewGetDayRosterQuery(date kernel.Date) (GetDayRosterQuery, error) {
	q := GetDayRosterQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDate(date); err != nil {
		return GetDayRosterQuery{}, err
	}

	return q, nil
}

// Date returns the service day being queried.
func (q GetDayRosterQuery) Date() kernel.Date {
	return q.date
}

// Validate ensures the query was created through the constructor.
func (q GetDayRosterQuery) Validate() error {
	return q.guard.Validate(ErrGetDayRosterQueryIsNotConstructed)
}

func (q *GetDayRosterQuery) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	q.date = date
	return nil
}

// GetDayRosterQueryResponse holds the duty lists for one service day.
// Both lists are empty when no roster has been assigned for the date.
type GetDayRosterQueryResponse struct {
	Date     kernel.Date
	Cooking  []kernel.UUID
	Delivery []kernel.UUID
}

// HasRoster reports whether any duty assignment exists for the date.
func (r GetDayRosterQueryResponse) HasRoster() bool {
	return len(r.Cooking) > 0 || len(r.Delivery) > 0
}
