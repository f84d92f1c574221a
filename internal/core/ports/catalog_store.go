package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
)

// CatalogStore provides read-only access to the menu catalog. The catalog is
// owned by another system; the engine never writes to it.
type CatalogStore interface {
	// GetDinner retrieves a dinner by id.
	// Returns errs.ObjectNotFoundError when the dinner does not exist.
	GetDinner(ctx context.Context, id kernel.UUID) (*catalog.Dinner, error)

	// GetMenuItems retrieves the menu items for the given ids. Unknown ids
	// are omitted from the result rather than failing the whole lookup.
	GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]*catalog.MenuItem, error)
}
