package kernel

import (
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DateLayout is the textual form of a calendar date used on the wire and in
// persistence keys.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when validating a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"Date must be created via NewDate, DateFromTime, or ParseDate")

// Date is an immutable calendar-date value object (no time-of-day, UTC).
// Roster assignments and order service days are keyed by Date.
type Date struct {
	t time.Time

	guard guard.ConstructorGuard
}

// NewDate creates a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{
		t:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

// DateFromTime truncates a timestamp to its UTC calendar date. The timestamp
// is normalized first, so the same instant maps to the same Date regardless
// of the zone it was expressed in.
func DateFromTime(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a date in DateLayout form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// String formats the date in DateLayout form.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// IsEqual compares two dates.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Validate returns ErrDateIsNotConstructed for zero-value dates.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}
