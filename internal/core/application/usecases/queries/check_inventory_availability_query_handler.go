package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// CheckInventoryAvailabilityQueryHandler resolves availability against the
// inventory_windows table. Windows are materialized lazily by reservations, so
// an absent row means the full default capacity is still free.
type CheckInventoryAvailabilityQueryHandler struct {
	db              *gorm.DB
	defaultCapacity int
	windowLength    time.Duration
}

// NewCheckInventoryAvailabilityQueryHandler creates a handler for availability
// queries. The default capacity and window length must match the values the
// reservation path is configured with.
func NewCheckInventoryAvailabilityQueryHandler(
	db *gorm.DB,
	defaultCapacity int,
	windowLength time.Duration,
) CheckInventoryAvailabilityQueryHandler {
	return CheckInventoryAvailabilityQueryHandler{
		db:              db,
		defaultCapacity: defaultCapacity,
		windowLength:    windowLength,
	}
}

// Handle reports the capacity state of the window covering the query
// timestamp and whether the asked quantity still fits.
func (h CheckInventoryAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckInventoryAvailabilityQuery,
) (CheckInventoryAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckInventoryAvailabilityQueryResponse{}, err
	}

	window, err := kernel.WindowContaining(query.At(), h.windowLength)
	if err != nil {
		return CheckInventoryAvailabilityQueryResponse{}, err
	}

	capacity := h.defaultCapacity
	reserved := 0

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			capacity,
			reserved
		FROM inventory_windows
		WHERE menu_item_id = ? AND window_start = ?
	`, query.MenuItemID().Bytes(), window.Start()).Rows()
	if err != nil {
		return CheckInventoryAvailabilityQueryResponse{}, err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&capacity, &reserved); err != nil {
			return CheckInventoryAvailabilityQueryResponse{}, err
		}
	}

	if err = rows.Err(); err != nil {
		return CheckInventoryAvailabilityQueryResponse{}, err
	}

	remaining := capacity - reserved
	return CheckInventoryAvailabilityQueryResponse{
		MenuItemID:  query.MenuItemID(),
		WindowStart: window.Start(),
		WindowEnd:   window.End(),
		Capacity:    capacity,
		Reserved:    reserved,
		Remaining:   remaining,
		Available:   remaining >= query.Quantity(),
	}, nil
}
