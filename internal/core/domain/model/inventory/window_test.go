package inventory_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTimeWindow(t *testing.T) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.WindowContaining(
		time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC),
		kernel.DefaultWindowLength,
	)
	require.NoError(t, err)
	return w
}

func TestNewWindow(t *testing.T) {
	t.Run("valid_window", func(t *testing.T) {
		itemID := kernel.NewUUID()

		w, err := inventory.NewWindow(itemID, testTimeWindow(t), 20)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.True(t, itemID.IsEqual(w.MenuItemID()))
		assert.Equal(t, 20, w.Capacity())
		assert.Equal(t, 0, w.Reserved())
		assert.Equal(t, 20, w.Remaining())
	})

	t.Run("rejects_negative_capacity", func(t *testing.T) {
		_, err := inventory.NewWindow(kernel.NewUUID(), testTimeWindow(t), -1)
		require.Error(t, err)
	})

	t.Run("rejects_invalid_menu_item_id", func(t *testing.T) {
		_, err := inventory.NewWindow(kernel.UUID{}, testTimeWindow(t), 20)
		require.Error(t, err)
	})

	t.Run("rejects_zero_time_window", func(t *testing.T) {
		_, err := inventory.NewWindow(kernel.NewUUID(), kernel.TimeWindow{}, 20)
		require.Error(t, err)
	})
}

func TestRestoreWindow(t *testing.T) {
	t.Run("restores_reserved_count", func(t *testing.T) {
		w, err := inventory.RestoreWindow(kernel.NewUUID(), testTimeWindow(t), 20, 15, "restocked monday")

		require.NoError(t, err)
		assert.Equal(t, 15, w.Reserved())
		assert.Equal(t, 5, w.Remaining())
		assert.Equal(t, "restocked monday", w.Notes())
	})

	t.Run("rejects_reserved_above_capacity", func(t *testing.T) {
		_, err := inventory.RestoreWindow(kernel.NewUUID(), testTimeWindow(t), 20, 21, "")
		require.Error(t, err)
	})

	t.Run("rejects_negative_reserved", func(t *testing.T) {
		_, err := inventory.RestoreWindow(kernel.NewUUID(), testTimeWindow(t), 20, -1, "")
		require.Error(t, err)
	})
}

func TestWindow_Reserve(t *testing.T) {
	t.Run("reserves_within_capacity", func(t *testing.T) {
		w, err := inventory.NewWindow(kernel.NewUUID(), testTimeWindow(t), 5)
		require.NoError(t, err)

		require.NoError(t, w.Reserve(3))
		assert.Equal(t, 3, w.Reserved())
		assert.Equal(t, 2, w.Remaining())
	})

	t.Run("fills_window_exactly", func(t *testing.T) {
		w, err := inventory.NewWindow(kernel.NewUUID(), testTimeWindow(t), 5)
		require.NoError(t, err)

		require.NoError(t, w.Reserve(5))
		assert.Equal(t, 0, w.Remaining())
		assert.False(t, w.HasCapacity(1))
	})

	t.Run("full_window_rejects_further_reservations", func(t *testing.T) {
		w, err := inventory.RestoreWindow(kernel.NewUUID(), testTimeWindow(t), 5, 5, "")
		require.NoError(t, err)

		err = w.Reserve(1)

		require.ErrorIs(t, err, inventory.ErrInsufficientCapacity)
		var capErr *inventory.InsufficientCapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 1, capErr.Requested)
		assert.Equal(t, 5, capErr.Reserved)
		assert.Equal(t, 5, capErr.Capacity)
		assert.Equal(t, 5, w.Reserved(), "failed reserve must not mutate the window")
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		w, err := inventory.NewWindow(kernel.NewUUID(), testTimeWindow(t), 5)
		require.NoError(t, err)

		require.Error(t, w.Reserve(0))
		require.Error(t, w.Reserve(-1))
	})
}

func TestWindow_Release(t *testing.T) {
	t.Run("reserve_then_release_round_trips", func(t *testing.T) {
		w, err := inventory.NewWindow(kernel.NewUUID(), testTimeWindow(t), 10)
		require.NoError(t, err)

		require.NoError(t, w.Reserve(4))
		clamped, err := w.Release(4)

		require.NoError(t, err)
		assert.False(t, clamped)
		assert.Equal(t, 0, w.Reserved())
	})

	t.Run("over_release_clamps_at_zero", func(t *testing.T) {
		w, err := inventory.RestoreWindow(kernel.NewUUID(), testTimeWindow(t), 10, 2, "")
		require.NoError(t, err)

		clamped, err := w.Release(5)

		require.NoError(t, err)
		assert.True(t, clamped)
		assert.Equal(t, 0, w.Reserved())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		w, err := inventory.NewWindow(kernel.NewUUID(), testTimeWindow(t), 10)
		require.NoError(t, err)

		_, err = w.Release(0)
		require.Error(t, err)
	})
}

func TestWindow_Restock(t *testing.T) {
	t.Run("raises_capacity", func(t *testing.T) {
		w, err := inventory.RestoreWindow(kernel.NewUUID(), testTimeWindow(t), 10, 4, "")
		require.NoError(t, err)

		require.NoError(t, w.Restock(25, "friday delivery"))
		assert.Equal(t, 25, w.Capacity())
		assert.Equal(t, 21, w.Remaining())
		assert.Equal(t, "friday delivery", w.Notes())
	})

	t.Run("cannot_shrink_below_reserved", func(t *testing.T) {
		w, err := inventory.RestoreWindow(kernel.NewUUID(), testTimeWindow(t), 10, 4, "")
		require.NoError(t, err)

		err = w.Restock(3, "")

		require.ErrorIs(t, err, inventory.ErrInvalidCapacity)
		assert.Equal(t, 10, w.Capacity())
	})

	t.Run("rejects_non_positive_capacity", func(t *testing.T) {
		w, err := inventory.NewWindow(kernel.NewUUID(), testTimeWindow(t), 10)
		require.NoError(t, err)

		require.ErrorIs(t, w.Restock(0, ""), inventory.ErrInvalidCapacity)
		require.ErrorIs(t, w.Restock(-5, ""), inventory.ErrInvalidCapacity)
	})
}

func TestWindow_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var w inventory.Window
		require.ErrorIs(t, w.Validate(), inventory.ErrWindowIsNotConstructed)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var w *inventory.Window
		require.ErrorIs(t, w.Validate(), inventory.ErrWindowIsNotConstructed)
	})
}
