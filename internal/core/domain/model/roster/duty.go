package roster

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Duty is an exclusive daily role an employee may hold. An employee can hold
// at most one duty kind per date.
type Duty int

const (
	// UnknownDuty represents an invalid or undefined duty.
	UnknownDuty Duty = iota

	// Cooking authorizes moving orders from pending to cooking and from
	// cooking to ready on the assigned date.
	Cooking

	// Delivery authorizes moving orders from ready to out_for_delivery and
	// from out_for_delivery to delivered on the assigned date.
	Delivery
)

func getDutyStrings() map[Duty]string {
	return map[Duty]string{
		UnknownDuty: "unknown",
		Cooking:     "cooking",
		Delivery:    "delivery",
	}
}

// ParseDuty converts a wire-level duty name to a Duty.
func ParseDuty(s string) (Duty, error) {
	for duty, name := range getDutyStrings() {
		if name == s && duty != UnknownDuty {
			return duty, nil
		}
	}
	return UnknownDuty, errs.NewValueIsInvalidErrorWithCause(
		"duty",
		fmt.Errorf("%q is not a valid duty", s),
	)
}

// String returns the wire-level name of the duty.
func (d Duty) String() string {
	if str, ok := getDutyStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects UnknownDuty and out-of-range values.
func (d Duty) Validate() error {
	if d != Cooking && d != Delivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"duty",
			fmt.Errorf("%d is not a valid duty", d),
		)
	}
	return nil
}
