package catalog

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
// through the NewMenuItem factory.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a single orderable catalog entry (wine, salad, extra course).
// Menu items are immutable catalog data, read-only to the engine.
type MenuItem struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	category string

	guard guard.ConstructorGuard
}

// NewMenuItem creates a validated MenuItem.
func NewMenuItem(id kernel.UUID, name string, price kernel.Money, category string) (*MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("menu item name")
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("menu item price")
	}

	return &MenuItem{
		id:       id,
		name:     name,
		price:    price,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ID returns the menu item identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the unit price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Category returns the item category (course, beverage, alcohol, ...).
func (m *MenuItem) Category() string {
	return m.category
}

// Validate ensures the item was built via NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}
