package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// ItemSpec is one requested order line before catalog resolution: a menu item
// reference and a quantity. Prices are attached later from the catalog.
type ItemSpec struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a request to place a new order: a dinner in a
// chosen serving style, optional additional items, and a delivery slot.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	dinnerID     kernel.UUID
	servingStyle catalog.ServingStyle
	deliveryAt   time.Time
	address      string
	items        []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates ids, the serving style, the delivery time, the address, and the
// requested quantities. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	dinnerID kernel.UUID,
	servingStyle catalog.ServingStyle,
	deliveryAt time.Time,
	address string,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDinnerID(dinnerID),
		cmd.setServingStyle(servingStyle),
		cmd.setDeliveryAt(deliveryAt),
		cmd.setAddress(address),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DinnerID returns the requested dinner.
func (c CreateOrderCommand) DinnerID() kernel.UUID {
	return c.dinnerID
}

// ServingStyle returns the requested serving style.
func (c CreateOrderCommand) ServingStyle() catalog.ServingStyle {
	return c.servingStyle
}

// DeliveryAt returns the requested delivery time.
func (c CreateOrderCommand) DeliveryAt() time.Time {
	return c.deliveryAt
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Items returns the requested additional order lines.
func (c CreateOrderCommand) Items() []ItemSpec {
	items := make([]ItemSpec, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDinnerID(dinnerID kernel.UUID) error {
	if err := dinnerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dinnerID", err)
	}
	c.dinnerID = dinnerID
	return nil
}

func (c *CreateOrderCommand) setServingStyle(servingStyle catalog.ServingStyle) error {
	if err := servingStyle.Validate(); err != nil {
		return err
	}
	c.servingStyle = servingStyle
	return nil
}

func (c *CreateOrderCommand) setDeliveryAt(deliveryAt time.Time) error {
	if deliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveryAt")
	}
	c.deliveryAt = deliveryAt
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("quantity %d is not greater than 0", item.Quantity),
			)
		}
	}
	c.items = make([]ItemSpec, len(items))
	copy(c.items, items)
	return nil
}
