package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory windows.
//
// Windows are keyed by (menu item, time window start) and created lazily:
// the first reservation attempt against a missing window materializes it with
// the configured default capacity.
type InventoryRepository interface {
	// GetOrCreate retrieves the window for the (menuItemID, window) pair,
	// creating it with defaultCapacity when it does not exist yet. The
	// returned aggregate is row-locked for the rest of the transaction.
	GetOrCreate(
		ctx context.Context,
		menuItemID kernel.UUID,
		window kernel.TimeWindow,
		defaultCapacity int,
	) (*inventory.Window, error)

	// Get retrieves the window for the (menuItemID, window) pair without
	// locking or creating it. Returns errs.ObjectNotFoundError when the
	// window was never materialized.
	Get(ctx context.Context, menuItemID kernel.UUID, window kernel.TimeWindow) (*inventory.Window, error)

	// GetForUpdate retrieves an existing window with a row lock, so a
	// release and a concurrent reservation on the same window serialize.
	// Returns errs.ObjectNotFoundError when the window was never
	// materialized.
	GetForUpdate(ctx context.Context, menuItemID kernel.UUID, window kernel.TimeWindow) (*inventory.Window, error)

	// Update persists the reserved count, capacity, and notes of a window.
	Update(ctx context.Context, aggregate *inventory.Window) error
}
