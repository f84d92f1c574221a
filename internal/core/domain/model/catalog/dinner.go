package catalog

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDinnerIsNotConstructed is returned when a Dinner was not created through
// the NewDinner factory.
var ErrDinnerIsNotConstructed = errors.New("Dinner must be created via NewDinner constructor")

// Component is one fixed (menu item, quantity) part of a dinner's composition.
type Component struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// Dinner is a curated set menu with a base price, a fixed component list, and
// a set of allowed serving styles. A feast-type dinner may forbid the simple
// style. Dinners are immutable catalog data, read-only to the engine.
type Dinner struct {
	id            kernel.UUID
	name          string
	basePrice     kernel.Money
	allowedStyles []ServingStyle
	components    []Component

	guard guard.ConstructorGuard
}

// NewDinner creates a validated Dinner. An empty allowedStyles slice means
// every serving style is available.
func NewDinner(
	id kernel.UUID,
	name string,
	basePrice kernel.Money,
	allowedStyles []ServingStyle,
	components []Component,
) (*Dinner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("dinner name")
	}
	if basePrice.IsNegative() {
		return nil, errs.NewValueIsInvalidError("dinner base price")
	}

	for _, style := range allowedStyles {
		if err := style.Validate(); err != nil {
			return nil, err
		}
	}

	if len(allowedStyles) == 0 {
		allowedStyles = AllServingStyles()
	}

	return &Dinner{
		id:            id,
		name:          name,
		basePrice:     basePrice,
		allowedStyles: allowedStyles,
		components:    components,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// ID returns the dinner identifier.
func (d *Dinner) ID() kernel.UUID {
	return d.id
}

// Name returns the display name.
func (d *Dinner) Name() string {
	return d.name
}

// BasePrice returns the undiscounted price before the style multiplier.
func (d *Dinner) BasePrice() kernel.Money {
	return d.basePrice
}

// AllowedStyles returns the serving styles this dinner may be ordered in.
func (d *Dinner) AllowedStyles() []ServingStyle {
	styles := make([]ServingStyle, len(d.allowedStyles))
	copy(styles, d.allowedStyles)
	return styles
}

// Components returns the dinner's fixed composition.
func (d *Dinner) Components() []Component {
	components := make([]Component, len(d.components))
	copy(components, d.components)
	return components
}

// AllowsStyle reports whether the dinner may be ordered in the given style.
func (d *Dinner) AllowsStyle(style ServingStyle) bool {
	for _, allowed := range d.allowedStyles {
		if allowed == style {
			return true
		}
	}
	return false
}

// Validate ensures the dinner was built via NewDinner.
func (d *Dinner) Validate() error {
	if d == nil {
		return ErrDinnerIsNotConstructed
	}
	return d.guard.Validate(ErrDinnerIsNotConstructed)
}
