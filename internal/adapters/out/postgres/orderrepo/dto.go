// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are loaded alongside the order row.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;index"`
	DinnerID           uuid.UUID  `gorm:"type:uuid"`
	ServingStyle       string     `gorm:"type:varchar(16)"`
	WindowStart        time.Time  `gorm:"index"`
	WindowEnd          time.Time
	Address            string
	TotalPrice         int64
	LoyaltyOrderCount  int
	Status             string     `gorm:"type:varchar(32);index"`
	Paid               bool
	CookingEmployeeID  *uuid.UUID `gorm:"type:uuid"`
	DeliveryEmployeeID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line with its price snapshot.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
	UnitPrice  int64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var cookingID, deliveryID *uuid.UUID
	if id := o.CookingEmployee(); id != nil {
		raw := id.Bytes()
		cookingID = &raw
	}
	if id := o.DeliveryEmployee(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    o.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  int64(item.UnitPrice()),
		})
	}

	return OrderDTO{
		ID:                 o.ID().Bytes(),
		CustomerID:         o.CustomerID().Bytes(),
		DinnerID:           o.DinnerID().Bytes(),
		ServingStyle:       o.ServingStyle().String(),
		WindowStart:        o.DeliveryWindow().Start(),
		WindowEnd:          o.DeliveryWindow().End(),
		Address:            o.Address(),
		TotalPrice:         int64(o.TotalPrice()),
		LoyaltyOrderCount:  o.LoyaltyOrderCount(),
		Status:             o.Status().String(),
		Paid:               o.IsPaid(),
		CookingEmployeeID:  cookingID,
		DeliveryEmployeeID: deliveryID,
		CreatedAt:          o.CreatedAt(),
		Items:              items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	dinnerID, err := kernel.UUIDFromBytes(dto.DinnerID[:])
	if err != nil {
		return nil, err
	}

	style, err := catalog.ParseServingStyle(dto.ServingStyle)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(menuItemID, itemDTO.Quantity, kernel.Money(itemDTO.UnitPrice))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	cookingID, err := optionalUUID(dto.CookingEmployeeID)
	if err != nil {
		return nil, err
	}
	deliveryID, err := optionalUUID(dto.DeliveryEmployeeID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, dinnerID, style, window, dto.Address,
		items, kernel.Money(dto.TotalPrice), dto.LoyaltyOrderCount, status, dto.Paid,
		cookingID, deliveryID, dto.CreatedAt)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
