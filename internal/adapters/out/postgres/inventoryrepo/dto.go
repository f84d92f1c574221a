// Package inventoryrepo provides data transfer objects and mapping functions
// for inventory window persistence. Windows are keyed by menu item and window
// start and materialized lazily on first use.
package inventoryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InventoryWindowDTO represents one capacity window row.
type InventoryWindowDTO struct {
	MenuItemID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	WindowStart time.Time `gorm:"primaryKey"`
	WindowEnd   time.Time
	Capacity    int
	Reserved    int
	Notes       string
}

// TableName specifies the database table name for inventory windows.
func (InventoryWindowDTO) TableName() string {
	return "inventory_windows"
}

// fromDomain converts an inventory window aggregate to its database row.
func fromDomain(w *inventory.Window) InventoryWindowDTO {
	return InventoryWindowDTO{
		MenuItemID:  w.MenuItemID().Bytes(),
		WindowStart: w.TimeWindow().Start(),
		WindowEnd:   w.TimeWindow().End(),
		Capacity:    w.Capacity(),
		Reserved:    w.Reserved(),
		Notes:       w.Notes(),
	}
}

// toDomain converts a database row to an inventory window aggregate.
func toDomain(dto InventoryWindowDTO) (*inventory.Window, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreWindow(menuItemID, window, dto.Capacity, dto.Reserved, dto.Notes)
}
