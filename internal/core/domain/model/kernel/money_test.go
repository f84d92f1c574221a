package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts_non_negative_amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(60000)
		require.NoError(t, err)
		assert.Equal(t, kernel.Money(60000), m)
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)
		require.Error(t, err)
	})
}

func TestRoundHalfUp(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		expected kernel.Money
	}{
		{name: "exact_value_unchanged", amount: 88350.0, expected: 88350},
		{name: "below_half_rounds_down", amount: 100.4, expected: 100},
		{name: "half_rounds_up", amount: 100.5, expected: 101},
		{name: "above_half_rounds_up", amount: 100.6, expected: 101},
		{name: "zero", amount: 0, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.RoundHalfUp(tc.amount))
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add_and_multiply", func(t *testing.T) {
		base := kernel.Money(78000)
		items := kernel.Money(15000)

		assert.Equal(t, kernel.Money(93000), base.Add(items))
		assert.Equal(t, kernel.Money(30000), items.MulQuantity(2))
	})

	t.Run("is_negative", func(t *testing.T) {
		assert.True(t, kernel.Money(-5).IsNegative())
		assert.False(t, kernel.Money(0).IsNegative())
	})
}
