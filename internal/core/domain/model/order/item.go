package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line: a menu item, the quantity ordered, and the unit
// price captured at ordering time. Prices are snapshotted on the line so
// later catalog changes never alter a placed order.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line. Quantity must be at least 1.
func NewItem(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	i := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setMenuItemID(menuItemID),
		i.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	i.unitPrice = unitPrice
	return i, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit captured at ordering time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
