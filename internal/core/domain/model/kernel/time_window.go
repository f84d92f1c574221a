package kernel

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DefaultWindowLength is the length of an inventory capacity bucket.
// Windows cover the service day as contiguous fixed-length buckets.
const DefaultWindowLength = time.Hour

// ErrTimeWindowIsNotConstructed is returned when validating a zero-value
// TimeWindow. Windows must be created via NewTimeWindow or WindowContaining.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"TimeWindow must be created via NewTimeWindow or WindowContaining")

// TimeWindow is an immutable value object describing one fixed-length bucket
// of the service day. Inventory capacity and reservations are tracked per
// (menu item, window) pair.
//
// Example:
//
//	w, err := kernel.WindowContaining(deliveryTime, kernel.DefaultWindowLength)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(w.Start(), w.End()) // 18:00:00 19:00:00
type TimeWindow struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewTimeWindow creates a window from explicit bounds.
// The end must be strictly after the start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	w := TimeWindow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(w.setStart(start), w.setEnd(end)); err != nil {
		return TimeWindow{}, err
	}

	if !w.end.After(w.start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window",
			fmt.Errorf("end %s is not after start %s", end, start),
		)
	}

	return w, nil
}

// WindowContaining resolves the fixed-length bucket covering the given
// timestamp: the window starting at the enclosing multiple of length
// (top of hour for the default length).
func WindowContaining(t time.Time, length time.Duration) (TimeWindow, error) {
	if t.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("timestamp")
	}
	if length <= 0 {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"window length",
			fmt.Errorf("%s is not greater than 0", length),
		)
	}

	start := t.Truncate(length)
	return NewTimeWindow(start, start.Add(length))
}

// Start returns the inclusive lower bound of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the exclusive upper bound of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Contains reports whether the timestamp falls inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

// IsEqual compares two windows by their bounds.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// String formats the window bounds for logs and error messages.
func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// Validate returns ErrTimeWindowIsNotConstructed for zero-value windows.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

func (w *TimeWindow) setStart(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("window start")
	}
	w.start = start
	return nil
}

func (w *TimeWindow) setEnd(end time.Time) error {
	if end.IsZero() {
		return errs.NewValueIsRequiredError("window end")
	}
	w.end = end
	return nil
}
