package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDinner(t *testing.T, basePrice kernel.Money, allowedStyles ...catalog.ServingStyle) *catalog.Dinner {
	t.Helper()
	d, err := catalog.NewDinner(kernel.NewUUID(), "Family Feast", basePrice, allowedStyles, nil)
	require.NoError(t, err)
	return d
}

func testItem(t *testing.T, quantity int, unitPrice kernel.Money) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func TestPricingEngine_Price(t *testing.T) {
	engine := services.NewPricingEngine()

	t.Run("grand_style_with_extra_item_and_loyalty_discount", func(t *testing.T) {
		dinner := testDinner(t, kernel.Money(60000))
		items := []order.Item{testItem(t, 1, kernel.Money(15000))}

		quote, err := engine.Price(dinner, catalog.Grand, items, 7)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(78000), quote.BasePrice)
		assert.Equal(t, kernel.Money(15000), quote.ItemsPrice)
		assert.InDelta(t, 0.05, quote.DiscountRate, 1e-9)
		assert.Equal(t, kernel.Money(88350), quote.Total)
	})

	t.Run("simple_style_no_items_no_discount", func(t *testing.T) {
		dinner := testDinner(t, kernel.Money(60000))

		quote, err := engine.Price(dinner, catalog.Simple, nil, 4)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(60000), quote.Total)
	})

	t.Run("style_multiplier_skips_extra_items", func(t *testing.T) {
		dinner := testDinner(t, kernel.Money(10000))
		items := []order.Item{testItem(t, 2, kernel.Money(5000))}

		quote, err := engine.Price(dinner, catalog.Deluxe, items, 0)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(16000), quote.BasePrice)
		assert.Equal(t, kernel.Money(10000), quote.ItemsPrice)
		assert.Equal(t, kernel.Money(26000), quote.Total)
	})

	t.Run("fractional_totals_round_half_up", func(t *testing.T) {
		dinner := testDinner(t, kernel.Money(10001))

		// 10001 * 0.95 = 9500.95 -> 9501
		quote, err := engine.Price(dinner, catalog.Simple, nil, 5)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(9501), quote.Total)
	})

	t.Run("rejects_style_not_allowed_by_dinner", func(t *testing.T) {
		dinner := testDinner(t, kernel.Money(60000), catalog.Grand, catalog.Deluxe)

		_, err := engine.Price(dinner, catalog.Simple, nil, 0)

		require.ErrorIs(t, err, services.ErrInvalidServingStyle)
		var styleErr *services.InvalidServingStyleError
		require.ErrorAs(t, err, &styleErr)
		assert.Equal(t, catalog.Simple, styleErr.Style)
	})

	t.Run("rejects_unknown_style", func(t *testing.T) {
		dinner := testDinner(t, kernel.Money(60000))

		_, err := engine.Price(dinner, catalog.UnknownStyle, nil, 0)

		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_dinner", func(t *testing.T) {
		var dinner catalog.Dinner

		_, err := engine.Price(&dinner, catalog.Simple, nil, 0)

		require.ErrorIs(t, err, catalog.ErrDinnerIsNotConstructed)
	})
}

func TestDiscountRate(t *testing.T) {
	tests := []struct {
		completedOrders int
		rate            float64
	}{
		{0, 0},
		{4, 0},
		{5, 0.05},
		{9, 0.05},
		{10, 0.10},
		{19, 0.10},
		{20, 0.15},
		{100, 0.15},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.rate, services.DiscountRate(tt.completedOrders), 1e-9,
			"completed orders: %d", tt.completedOrders)
	}
}
