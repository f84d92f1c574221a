// Package catalogrepo provides read-only access to catalog reference data.
// Dinners and menu items are owned by the catalog service and synced into
// local tables; the engine never writes them.
package catalogrepo

import (
	"strings"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DinnerDTO represents one dinner row. AllowedStyles is a comma-separated
// list of wire-level style names; an empty string means every style.
type DinnerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	BasePrice     int64
	AllowedStyles string
	Components    []DinnerComponentDTO `gorm:"foreignKey:DinnerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for dinners.
func (DinnerDTO) TableName() string {
	return "dinners"
}

// DinnerComponentDTO represents one fixed component line of a dinner.
type DinnerComponentDTO struct {
	DinnerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
}

// TableName specifies the database table name for dinner components.
func (DinnerComponentDTO) TableName() string {
	return "dinner_components"
}

// MenuItemDTO represents one orderable menu item row.
type MenuItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Price    int64
	Category string
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// dinnerToDomain converts a dinner row to a catalog dinner.
func dinnerToDomain(dto DinnerDTO) (*catalog.Dinner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var styles []catalog.ServingStyle
	if dto.AllowedStyles != "" {
		for _, name := range strings.Split(dto.AllowedStyles, ",") {
			style, err := catalog.ParseServingStyle(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			styles = append(styles, style)
		}
	}

	components := make([]catalog.Component, 0, len(dto.Components))
	for _, component := range dto.Components {
		menuItemID, err := kernel.UUIDFromBytes(component.MenuItemID[:])
		if err != nil {
			return nil, err
		}
		components = append(components, catalog.Component{
			MenuItemID: menuItemID,
			Quantity:   component.Quantity,
		})
	}

	return catalog.NewDinner(id, dto.Name, kernel.Money(dto.BasePrice), styles, components)
}

// menuItemToDomain converts a menu item row to a catalog menu item.
func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewMenuItem(id, dto.Name, kernel.Money(dto.Price), dto.Category)
}
