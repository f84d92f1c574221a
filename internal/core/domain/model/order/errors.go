package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for lifecycle rule violations. Use errors.Is to classify.
var (
	ErrIllegalTransition      = errors.New("illegal status transition")
	ErrUnauthorizedTransition = errors.New("employee not authorized for transition")
	ErrOrderAlreadyInProgress = errors.New("order is already in progress")
	ErrOrderIsNotModifiable   = errors.New("order items can no longer be modified")
)

// IllegalTransitionError reports a status change the state machine forbids.
type IllegalTransitionError struct {
	OrderID string
	From    Status
	To      Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the rejected move.
func NewIllegalTransitionError(orderID string, from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{OrderID: orderID, From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: order %s cannot move from %s to %s",
		ErrIllegalTransition, e.OrderID, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// UnauthorizedTransitionError reports a transition attempted by an employee
// who does not hold the required duty on the order's delivery date.
type UnauthorizedTransitionError struct {
	OrderID    string
	EmployeeID string
	Duty       string
	Date       string
}

// NewUnauthorizedTransitionError creates an UnauthorizedTransitionError for
// the rejected attempt.
func NewUnauthorizedTransitionError(orderID, employeeID, duty, date string) *UnauthorizedTransitionError {
	return &UnauthorizedTransitionError{OrderID: orderID, EmployeeID: employeeID, Duty: duty, Date: date}
}

func (e *UnauthorizedTransitionError) Error() string {
	return fmt.Sprintf("%s: employee %s lacks %s duty on %s for order %s",
		ErrUnauthorizedTransition, e.EmployeeID, e.Duty, e.Date, e.OrderID)
}

func (e *UnauthorizedTransitionError) Unwrap() error {
	return ErrUnauthorizedTransition
}

// OrderAlreadyInProgressError reports a cancellation attempt on an order that
// has left the pending state.
type OrderAlreadyInProgressError struct {
	OrderID string
	Status  Status
}

// NewOrderAlreadyInProgressError creates an OrderAlreadyInProgressError for
// the rejected cancellation.
func NewOrderAlreadyInProgressError(orderID string, status Status) *OrderAlreadyInProgressError {
	return &OrderAlreadyInProgressError{OrderID: orderID, Status: status}
}

func (e *OrderAlreadyInProgressError) Error() string {
	return fmt.Sprintf("%s: order %s is %s", ErrOrderAlreadyInProgress, e.OrderID, e.Status)
}

func (e *OrderAlreadyInProgressError) Unwrap() error {
	return ErrOrderAlreadyInProgress
}
