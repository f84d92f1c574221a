package roster

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDayAssignmentIsNotConstructed is returned when a DayAssignment instance
// was not created through NewDayAssignment or RestoreDayAssignment.
var ErrDayAssignmentIsNotConstructed = errors.New(
	"DayAssignment must be created via NewDayAssignment or RestoreDayAssignment constructor")

// DayAssignment is the roster aggregate for one calendar date. It holds the
// disjoint sets of employees assigned to cooking duty and delivery duty.
//
// Invariants:
//   - cooking and delivery sets are disjoint
//   - each set has at least minHeadcount members
//
// Both constructors enforce the invariants, so an under-staffed or
// overlapping draft is never stored.
type DayAssignment struct {
	date     kernel.Date
	cooking  []kernel.UUID
	delivery []kernel.UUID

	guard guard.ConstructorGuard
}

// NewDayAssignment creates the roster for date. Duplicate ids inside one duty
// set are collapsed before the headcount check.
func NewDayAssignment(
	date kernel.Date,
	cooking []kernel.UUID,
	delivery []kernel.UUID,
	minHeadcount int,
) (*DayAssignment, error) {
	a := &DayAssignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setDate(date),
		a.setDuties(cooking, delivery, minHeadcount),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreDayAssignment reconstructs a DayAssignment from persistence,
// re-checking the disjointness and headcount invariants.
func RestoreDayAssignment(
	date kernel.Date,
	cooking []kernel.UUID,
	delivery []kernel.UUID,
	minHeadcount int,
) (*DayAssignment, error) {
	return NewDayAssignment(date, cooking, delivery, minHeadcount)
}

// Validate ensures the DayAssignment was created through a constructor.
func (a *DayAssignment) Validate() error {
	if a == nil {
		return ErrDayAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrDayAssignmentIsNotConstructed)
}

// Date returns the calendar date this roster covers.
func (a *DayAssignment) Date() kernel.Date {
	return a.date
}

// Cooking returns the employees on cooking duty.
func (a *DayAssignment) Cooking() []kernel.UUID {
	out := make([]kernel.UUID, len(a.cooking))
	copy(out, a.cooking)
	return out
}

// Delivery returns the employees on delivery duty.
func (a *DayAssignment) Delivery() []kernel.UUID {
	out := make([]kernel.UUID, len(a.delivery))
	copy(out, a.delivery)
	return out
}

// HasDuty reports whether employeeID holds duty on this date.
func (a *DayAssignment) HasDuty(employeeID kernel.UUID, duty Duty) bool {
	for _, id := range a.dutySet(duty) {
		if id.IsEqual(employeeID) {
			return true
		}
	}
	return false
}

// IsAuthorized reports whether employeeID may perform transitions requiring
// duty on this date. A stored roster always satisfies the staffing
// invariants, so authorization reduces to duty membership.
func (a *DayAssignment) IsAuthorized(employeeID kernel.UUID, duty Duty) bool {
	return a.HasDuty(employeeID, duty)
}

func (a *DayAssignment) dutySet(duty Duty) []kernel.UUID {
	switch duty {
	case Cooking:
		return a.cooking
	case Delivery:
		return a.delivery
	default:
		return nil
	}
}

func (a *DayAssignment) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	a.date = date
	return nil
}

func (a *DayAssignment) setDuties(cooking, delivery []kernel.UUID, minHeadcount int) error {
	if minHeadcount < 1 {
		return errs.NewValueIsOutOfRangeError("minHeadcount", minHeadcount, 1, nil)
	}

	cookingSet, err := dedupe("cooking", cooking)
	if err != nil {
		return err
	}
	deliverySet, err := dedupe("delivery", delivery)
	if err != nil {
		return err
	}

	for _, id := range cookingSet {
		for _, other := range deliverySet {
			if id.IsEqual(other) {
				return NewDualAssignmentError(id.String(), a.date.String())
			}
		}
	}

	if len(cookingSet) < minHeadcount {
		return NewInsufficientStaffError(Cooking, len(cookingSet), minHeadcount)
	}
	if len(deliverySet) < minHeadcount {
		return NewInsufficientStaffError(Delivery, len(deliverySet), minHeadcount)
	}

	a.cooking = cookingSet
	a.delivery = deliverySet
	return nil
}

func dedupe(paramName string, ids []kernel.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(paramName, err)
		}
		seen := false
		for _, existing := range out {
			if existing.IsEqual(id) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, id)
		}
	}
	return out, nil
}
