package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for one customer order. It owns the lifecycle
// status, the priced line items, and the audit references to the employees
// who handled it.
//
// Invariants:
//   - status transitions follow the forward path of the state machine
//   - items are only modifiable while the order is pending
//   - total price and line prices are snapshotted at creation and never
//     recomputed from the catalog
//   - loyaltyOrderCount records the customer's completed-order count at the
//     moment of pricing, so the applied discount stays auditable
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	dinnerID          kernel.UUID
	servingStyle      catalog.ServingStyle
	deliveryWindow    kernel.TimeWindow
	address           string
	items             []Item
	totalPrice        kernel.Money
	loyaltyOrderCount int
	status            Status
	paid              bool
	createdAt         time.Time

	cookingEmployeeID  *kernel.UUID
	deliveryEmployeeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrder creates a pending, unpaid Order.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	dinnerID kernel.UUID,
	servingStyle catalog.ServingStyle,
	deliveryWindow kernel.TimeWindow,
	address string,
	items []Item,
	totalPrice kernel.Money,
	loyaltyOrderCount int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDinnerID(dinnerID),
		o.setServingStyle(servingStyle),
		o.setDeliveryWindow(deliveryWindow),
		o.setAddress(address),
		o.setItems(items),
		o.setLoyaltyOrderCount(loyaltyOrderCount),
	); err != nil {
		return nil, err
	}

	o.totalPrice = totalPrice
	o.createdAt = createdAt
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	dinnerID kernel.UUID,
	servingStyle catalog.ServingStyle,
	deliveryWindow kernel.TimeWindow,
	address string,
	items []Item,
	totalPrice kernel.Money,
	loyaltyOrderCount int,
	status Status,
	paid bool,
	cookingEmployeeID *kernel.UUID,
	deliveryEmployeeID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, dinnerID, servingStyle, deliveryWindow,
		address, items, totalPrice, loyaltyOrderCount, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.paid = paid
	o.cookingEmployeeID = cookingEmployeeID
	o.deliveryEmployeeID = deliveryEmployeeID
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DinnerID returns the ordered dinner.
func (o *Order) DinnerID() kernel.UUID {
	return o.dinnerID
}

// ServingStyle returns the chosen serving style.
func (o *Order) ServingStyle() catalog.ServingStyle {
	return o.servingStyle
}

// DeliveryWindow returns the requested delivery time window.
func (o *Order) DeliveryWindow() kernel.TimeWindow {
	return o.deliveryWindow
}

// DeliveryDate returns the calendar date of the delivery window. Roster
// authorization for status transitions is checked against this date.
func (o *Order) DeliveryDate() kernel.Date {
	return kernel.DateFromTime(o.deliveryWindow.Start())
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// TotalPrice returns the final price after the loyalty discount.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// LoyaltyOrderCount returns the customer's completed-order count captured
// when the order was priced.
func (o *Order) LoyaltyOrderCount() int {
	return o.loyaltyOrderCount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether payment has been recorded for the order.
func (o *Order) IsPaid() bool {
	return o.paid
}

// CookingEmployee returns the employee who last moved the order through a
// kitchen transition. Nil until the order starts cooking.
func (o *Order) CookingEmployee() *kernel.UUID {
	return o.cookingEmployeeID
}

// DeliveryEmployee returns the employee who last moved the order through a
// courier transition. Nil until the order leaves for delivery.
func (o *Order) DeliveryEmployee() *kernel.UUID {
	return o.deliveryEmployeeID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to target along the state machine.
// Returns IllegalTransitionError when the move is not allowed from the
// current status. A Cancelled target is delegated to Cancel.
func (o *Order) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == Cancelled {
		return o.Cancel()
	}

	if !o.status.CanTransitionTo(target) {
		return NewIllegalTransitionError(o.id.String(), o.status, target)
	}

	o.status = target
	return nil
}

// Cancel cancels the order. Only pending orders can be cancelled; once the
// kitchen has started, the attempt fails with OrderAlreadyInProgressError.
func (o *Order) Cancel() error {
	if o.status != Pending {
		return NewOrderAlreadyInProgressError(o.id.String(), o.status)
	}

	o.status = Cancelled
	return nil
}

// ReplaceItems swaps the order lines and the re-priced total. Allowed only
// while the order is pending.
func (o *Order) ReplaceItems(items []Item, newTotal kernel.Money) error {
	if o.status != Pending {
		return fmt.Errorf("%w: order %s is %s", ErrOrderIsNotModifiable, o.id, o.status)
	}

	if err := o.setItems(items); err != nil {
		return err
	}

	o.totalPrice = newTotal
	return nil
}

// AssignCooking records the employee handling the kitchen side of the order.
func (o *Order) AssignCooking(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	o.cookingEmployeeID = &employeeID
	return nil
}

// AssignDelivery records the employee handling the courier side of the order.
func (o *Order) AssignDelivery(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	o.deliveryEmployeeID = &employeeID
	return nil
}

// MarkPaid records payment for the order. Marking an already paid order is a
// no-op so payment callbacks can be retried safely.
func (o *Order) MarkPaid() {
	o.paid = true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDinnerID(dinnerID kernel.UUID) error {
	if err := dinnerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dinnerID", err)
	}
	o.dinnerID = dinnerID
	return nil
}

func (o *Order) setServingStyle(servingStyle catalog.ServingStyle) error {
	if err := servingStyle.Validate(); err != nil {
		return err
	}
	o.servingStyle = servingStyle
	return nil
}

func (o *Order) setDeliveryWindow(deliveryWindow kernel.TimeWindow) error {
	if err := deliveryWindow.Validate(); err != nil {
		return err
	}
	o.deliveryWindow = deliveryWindow
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setLoyaltyOrderCount(loyaltyOrderCount int) error {
	if loyaltyOrderCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"loyaltyOrderCount",
			fmt.Errorf("%d is negative", loyaltyOrderCount),
		)
	}
	o.loyaltyOrderCount = loyaltyOrderCount
	return nil
}
