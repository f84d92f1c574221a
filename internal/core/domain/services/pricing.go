package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrInvalidServingStyle is returned when a dinner is ordered in a serving
// style its catalog entry does not allow.
var ErrInvalidServingStyle = errors.New("serving style not allowed for dinner")

// InvalidServingStyleError reports the rejected (dinner, style) combination.
type InvalidServingStyleError struct {
	DinnerID string
	Style    catalog.ServingStyle
}

// NewInvalidServingStyleError creates an InvalidServingStyleError.
func NewInvalidServingStyleError(dinnerID string, style catalog.ServingStyle) *InvalidServingStyleError {
	return &InvalidServingStyleError{DinnerID: dinnerID, Style: style}
}

func (e *InvalidServingStyleError) Error() string {
	return fmt.Sprintf("%s: dinner %s does not allow %s", ErrInvalidServingStyle, e.DinnerID, e.Style)
}

func (e *InvalidServingStyleError) Unwrap() error {
	return ErrInvalidServingStyle
}

// Quote is the priced breakdown of an order before it is persisted.
type Quote struct {
	// BasePrice is the dinner price after the serving style multiplier.
	BasePrice kernel.Money

	// ItemsPrice is the sum of all additional line subtotals.
	ItemsPrice kernel.Money

	// DiscountRate is the applied loyalty discount, in [0, 1).
	DiscountRate float64

	// Total is the final amount: (BasePrice + ItemsPrice) minus the
	// loyalty discount, rounded half-up.
	Total kernel.Money
}

// PricingEngine is a stateless domain service that prices an order.
//
// Pricing rules:
//   - The dinner base price is scaled by the serving style multiplier and
//     rounded half-up.
//   - Additional items are charged at their captured unit prices; the style
//     multiplier does not apply to them.
//   - The loyalty discount is a step function of the customer's completed
//     order count and applies to the whole subtotal.
//
// All rounding is half-up to whole currency units, performed once per step,
// so equal inputs always price to equal totals.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price computes the quote for ordering dinner in the given style with the
// given extra items, for a customer with loyaltyOrderCount completed orders.
//
// Returns InvalidServingStyleError when the dinner does not allow the style.
func (p PricingEngine) Price(
	dinner *catalog.Dinner,
	style catalog.ServingStyle,
	items []order.Item,
	loyaltyOrderCount int,
) (Quote, error) {
	if err := dinner.Validate(); err != nil {
		return Quote{}, err
	}

	if err := style.Validate(); err != nil {
		return Quote{}, err
	}

	if !dinner.AllowsStyle(style) {
		return Quote{}, NewInvalidServingStyleError(dinner.ID().String(), style)
	}

	basePrice := kernel.RoundHalfUp(dinner.BasePrice().Float64() * style.Multiplier())

	var itemsPrice kernel.Money
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Quote{}, err
		}
		itemsPrice = itemsPrice.Add(item.Subtotal())
	}

	rate := DiscountRate(loyaltyOrderCount)
	subtotal := basePrice.Add(itemsPrice)
	total := kernel.RoundHalfUp(subtotal.Float64() * (1 - rate))

	return Quote{
		BasePrice:    basePrice,
		ItemsPrice:   itemsPrice,
		DiscountRate: rate,
		Total:        total,
	}, nil
}

// DiscountRate returns the loyalty discount for a customer who has completed
// the given number of orders.
//
// Tiers:
//
//	 0-4  orders: 0%
//	 5-9  orders: 5%
//	10-19 orders: 10%
//	 20+  orders: 15%
func DiscountRate(completedOrders int) float64 {
	switch {
	case completedOrders >= 20:
		return 0.15
	case completedOrders >= 10:
		return 0.10
	case completedOrders >= 5:
		return 0.05
	default:
		return 0
	}
}
