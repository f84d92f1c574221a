package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrModifyOrderItemsCommandIsNotConstructed = errors.New(
	"ModifyOrderItemsCommand must be created via NewModifyOrderItemsCommand constructor",
)

// ModifyOrderItemsCommand represents a customer's request to replace the
// additional item lines of a pending order.
type ModifyOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []ItemSpec

	guard guard.ConstructorGuard
}

// NewModifyOrderItemsCommand creates a command to replace an order's extra
// items. An empty items slice removes all extra lines.
func NewModifyOrderItemsCommand(
	orderID, customerID kernel.UUID, items []ItemSpec,
) (ModifyOrderItemsCommand, error) {
	cmd := ModifyOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return ModifyOrderItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ModifyOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderItemsCommandIsNotConstructed)
}

// OrderID returns the order to modify.
func (c ModifyOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the requesting customer.
func (c ModifyOrderItemsCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the replacement order lines.
func (c ModifyOrderItemsCommand) Items() []ItemSpec {
	items := make([]ItemSpec, len(c.items))
	copy(items, c.items)
	return items
}

func (c *ModifyOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ModifyOrderItemsCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	c.customerID = customerID
	return nil
}

func (c *ModifyOrderItemsCommand) setItems(items []ItemSpec) error {
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
