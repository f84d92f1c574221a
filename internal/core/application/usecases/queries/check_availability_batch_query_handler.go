package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckAvailabilityBatchQueryHandler answers batch availability checks with
// one round trip over the materialized windows.
type CheckAvailabilityBatchQueryHandler struct {
	db              *gorm.DB
	defaultCapacity int
	windowLength    time.Duration
}

// NewCheckAvailabilityBatchQueryHandler creates a handler for batch
// availability queries. The default capacity and window length must match the
// values the reservation path is configured with.
func NewCheckAvailabilityBatchQueryHandler(
	db *gorm.DB,
	defaultCapacity int,
	windowLength time.Duration,
) CheckAvailabilityBatchQueryHandler {
	return CheckAvailabilityBatchQueryHandler{
		db:              db,
		defaultCapacity: defaultCapacity,
		windowLength:    windowLength,
	}
}

// Handle reports per menu item whether the window covering the query
// timestamp still has at least one free portion. Items without a
// materialized window fall back to the default capacity.
func (h CheckAvailabilityBatchQueryHandler) Handle(
	ctx context.Context,
	query CheckAvailabilityBatchQuery,
) (CheckAvailabilityBatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckAvailabilityBatchQueryResponse{}, err
	}

	window, err := kernel.WindowContaining(query.At(), h.windowLength)
	if err != nil {
		return CheckAvailabilityBatchQueryResponse{}, err
	}

	available := make(map[kernel.UUID]bool, len(query.MenuItemIDs()))
	rawIDs := make([]uuid.UUID, 0, len(query.MenuItemIDs()))
	for _, id := range query.MenuItemIDs() {
		available[id] = h.defaultCapacity > 0
		rawIDs = append(rawIDs, id.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			capacity,
			reserved
		FROM inventory_windows
		WHERE menu_item_id IN ? AND window_start = ?
	`, rawIDs, window.Start()).Rows()
	if err != nil {
		return CheckAvailabilityBatchQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			menuItemID uuid.UUID
			capacity   int
			reserved   int
		)
		if err = rows.Scan(&menuItemID, &capacity, &reserved); err != nil {
			return CheckAvailabilityBatchQueryResponse{}, err
		}

		id, err := kernel.UUIDFromBytes(menuItemID[:])
		if err != nil {
			return CheckAvailabilityBatchQueryResponse{}, err
		}
		available[id] = capacity-reserved > 0
	}

	if err = rows.Err(); err != nil {
		return CheckAvailabilityBatchQueryResponse{}, err
	}

	return CheckAvailabilityBatchQueryResponse{
		WindowStart: window.Start(),
		WindowEnd:   window.End(),
		Available:   available,
	}, nil
}
