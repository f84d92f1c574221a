package order

import (
	"fmt"

	"fulfillment/internal/core/domain/model/roster"
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Cooking ──> Ready ──> OutForDelivery ──> Delivered
//	   │
//	   └──> Cancelled
//
// There are no backward transitions. Delivered and Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after order creation. Only pending
	// orders can be cancelled or have their items modified.
	Pending

	// Cooking indicates the kitchen has started preparing the order.
	Cooking

	// Ready indicates preparation is finished and the order awaits pickup.
	Ready

	// OutForDelivery indicates a courier has taken the order.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a final state.
	Delivered

	// Cancelled indicates the customer cancelled the order while it was
	// still pending. This is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Cooking:        "cooking",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getForwardTransitions maps each status to its single forward successor.
// Cancellation is handled separately: it is not a forward transition.
func getForwardTransitions() map[Status]Status {
	return map[Status]Status{
		Pending:        Cooking,
		Cooking:        Ready,
		Ready:          OutForDelivery,
		OutForDelivery: Delivered,
	}
}

// ParseStatus converts a wire-level status name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire-level name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the state machine allows moving from s to
// target. Forward moves advance exactly one step; Cancelled is reachable only
// from Pending.
func (s Status) CanTransitionTo(target Status) bool {
	if target == Cancelled {
		return s == Pending
	}
	next, ok := getForwardTransitions()[s]
	return ok && next == target
}

// RequiredDuty returns the roster duty an employee must hold to move an order
// into target. Kitchen-side targets require cooking duty, courier-side
// targets require delivery duty. The second return value is false for targets
// that are not employee-driven (such as Cancelled).
func RequiredDuty(target Status) (roster.Duty, bool) {
	switch target {
	case Cooking, Ready:
		return roster.Cooking, true
	case OutForDelivery, Delivered:
		return roster.Delivery, true
	default:
		return roster.UnknownDuty, false
	}
}
