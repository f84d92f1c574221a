package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventorySnapshotQueryHandler reads materialized capacity windows
// straight from the inventory_windows table for operational dashboards.
type GetInventorySnapshotQueryHandler struct {
	db *gorm.DB
}

// NewGetInventorySnapshotQueryHandler creates a handler for inventory
// snapshot queries.
func NewGetInventorySnapshotQueryHandler(db *gorm.DB) GetInventorySnapshotQueryHandler {
	return GetInventorySnapshotQueryHandler{db: db}
}

// Handle returns all windows starting inside [from, to), ordered by menu item
// and window start for stable output.
func (h GetInventorySnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetInventorySnapshotQuery,
) ([]GetInventorySnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	windows := make([]GetInventorySnapshotQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			window_start,
			window_end,
			capacity,
			reserved,
			notes
		FROM inventory_windows
		WHERE window_start >= ? AND window_start < ?
		ORDER BY menu_item_id, window_start
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var windowResp GetInventorySnapshotQueryResponse
		var menuItemID uuid.UUID
		var windowStart, windowEnd time.Time

		err = rows.Scan(
			&menuItemID,
			&windowStart,
			&windowEnd,
			&windowResp.Capacity,
			&windowResp.Reserved,
			&windowResp.Notes,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		windowResp.MenuItemID = itemID
		windowResp.WindowStart = windowStart
		windowResp.WindowEnd = windowEnd
		windowResp.Remaining = windowResp.Capacity - windowResp.Reserved
		windows = append(windows, windowResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return windows, nil
}
