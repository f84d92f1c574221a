package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// resolveItems attaches catalog prices to requested order lines. Ids missing
// from the catalog are skipped with a warning instead of failing the command.
func resolveItems(
	ctx context.Context, catalogStore ports.CatalogStore, specs []ItemSpec,
) ([]order.Item, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	ids := make([]kernel.UUID, 0, len(specs))
	for _, spec := range specs {
		ids = append(ids, spec.MenuItemID)
	}

	menuItems, err := catalogStore.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*catalog.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		byID[mi.ID()] = mi
	}

	items := make([]order.Item, 0, len(specs))
	for _, spec := range specs {
		mi, ok := byID[spec.MenuItemID]
		if !ok {
			slog.Warn("skipping unknown menu item", "menu_item_id", spec.MenuItemID.String())
			continue
		}

		item, err := order.NewItem(spec.MenuItemID, spec.Quantity, mi.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
