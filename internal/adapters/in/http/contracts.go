package http

import "time"

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem is one order line in requests and responses.
type OrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   string      `json:"customer_id"`
	DinnerID     string      `json:"dinner_id"`
	ServingStyle string      `json:"serving_style"`
	DeliveryAt   time.Time   `json:"delivery_at"`
	Address      string      `json:"address"`
	Items        []OrderItem `json:"items"`
}

// CreateOrderResponse returns the identifier of the placed order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ChangeOrderStatusRequest is the body of POST /api/v1/orders/:orderId/status.
type ChangeOrderStatusRequest struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:orderId/cancel.
// RequestedBy is the owning customer or an admin user.
type CancelOrderRequest struct {
	RequestedBy string `json:"requested_by"`
}

// ModifyOrderItemsRequest is the body of PUT /api/v1/orders/:orderId/items.
// An empty item list removes all extra lines from the order.
type ModifyOrderItemsRequest struct {
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
}

// AssignOrderStaffRequest is the body of POST /api/v1/orders/:orderId/staff.
type AssignOrderStaffRequest struct {
	EmployeeID string `json:"employee_id"`
	Duty       string `json:"duty"`
}

// Order is one order row in a customer's history.
type Order struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	ServingStyle string    `json:"serving_style"`
	WindowStart  time.Time `json:"window_start"`
	WindowEnd    time.Time `json:"window_end"`
	Address      string    `json:"address"`
	TotalPrice   int64     `json:"total_price"`
	Paid         bool      `json:"paid"`
	CreatedAt    time.Time `json:"created_at"`
}

// RestockInventoryRequest is the body of POST /api/v1/inventory/restock.
type RestockInventoryRequest struct {
	MenuItemID string    `json:"menu_item_id"`
	WindowAt   time.Time `json:"window_at"`
	Capacity   int       `json:"capacity"`
	Notes      string    `json:"notes"`
}

// InventoryAvailability reports whether a quantity fits in a window.
type InventoryAvailability struct {
	MenuItemID  string    `json:"menu_item_id"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Capacity    int       `json:"capacity"`
	Reserved    int       `json:"reserved"`
	Remaining   int       `json:"remaining"`
	Available   bool      `json:"available"`
}

// InventoryAvailabilityBatch maps each requested menu item to whether at
// least one portion remains in the window covering the query timestamp.
type InventoryAvailabilityBatch struct {
	WindowStart time.Time       `json:"window_start"`
	WindowEnd   time.Time       `json:"window_end"`
	Available   map[string]bool `json:"available"`
}

// InventoryWindow is one materialized capacity window in a snapshot.
type InventoryWindow struct {
	MenuItemID  string    `json:"menu_item_id"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Capacity    int       `json:"capacity"`
	Reserved    int       `json:"reserved"`
	Remaining   int       `json:"remaining"`
	Notes       string    `json:"notes,omitempty"`
}

// AssignRosterRequest is the body of PUT /api/v1/roster/:date.
type AssignRosterRequest struct {
	Cooking  []string `json:"cooking"`
	Delivery []string `json:"delivery"`
}

// Roster lists the duty assignments of one service day.
type Roster struct {
	Date     string   `json:"date"`
	Cooking  []string `json:"cooking"`
	Delivery []string `json:"delivery"`
}
