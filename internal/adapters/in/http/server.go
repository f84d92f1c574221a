// Package http exposes the fulfillment use cases over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/roster"

	"github.com/labstack/echo/v4"
)

// Server routes HTTP requests to the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	modifyOrderItemsHandler  commands.ModifyOrderItemsCommandHandler
	markOrderPaidHandler     commands.MarkOrderPaidCommandHandler
	assignOrderStaffHandler  commands.AssignOrderStaffCommandHandler
	restockInventoryHandler  commands.RestockInventoryCommandHandler
	assignDailyRosterHandler commands.AssignDailyRosterCommandHandler

	// Query handlers
	checkAvailabilityHandler      queries.CheckInventoryAvailabilityQueryHandler
	checkAvailabilityBatchHandler queries.CheckAvailabilityBatchQueryHandler
	getCustomerOrdersHandler      queries.GetCustomerOrdersQueryHandler
	getInventorySnapshotHandler   queries.GetInventorySnapshotQueryHandler
	getDayRosterHandler           queries.GetDayRosterQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	modifyOrderItemsHandler commands.ModifyOrderItemsCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	assignOrderStaffHandler commands.AssignOrderStaffCommandHandler,
	restockInventoryHandler commands.RestockInventoryCommandHandler,
	assignDailyRosterHandler commands.AssignDailyRosterCommandHandler,
	checkAvailabilityHandler queries.CheckInventoryAvailabilityQueryHandler,
	checkAvailabilityBatchHandler queries.CheckAvailabilityBatchQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getInventorySnapshotHandler queries.GetInventorySnapshotQueryHandler,
	getDayRosterHandler queries.GetDayRosterQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		changeOrderStatusHandler:      changeOrderStatusHandler,
		cancelOrderHandler:            cancelOrderHandler,
		modifyOrderItemsHandler:       modifyOrderItemsHandler,
		markOrderPaidHandler:          markOrderPaidHandler,
		assignOrderStaffHandler:       assignOrderStaffHandler,
		restockInventoryHandler:       restockInventoryHandler,
		assignDailyRosterHandler:      assignDailyRosterHandler,
		checkAvailabilityHandler:      checkAvailabilityHandler,
		checkAvailabilityBatchHandler: checkAvailabilityBatchHandler,
		getCustomerOrdersHandler:      getCustomerOrdersHandler,
		getInventorySnapshotHandler:   getInventorySnapshotHandler,
		getDayRosterHandler:           getDayRosterHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.PUT("/orders/:orderId/items", s.ModifyOrderItems)
	api.POST("/orders/:orderId/payment", s.MarkOrderPaid)
	api.POST("/orders/:orderId/staff", s.AssignOrderStaff)
	api.GET("/customers/:customerId/orders", s.GetCustomerOrders)

	api.GET("/inventory/availability", s.CheckInventoryAvailability)
	api.GET("/inventory/availability/batch", s.CheckAvailabilityBatch)
	api.GET("/inventory/windows", s.GetInventorySnapshot)
	api.POST("/inventory/restock", s.RestockInventory)

	api.PUT("/roster/:date", s.AssignDailyRoster)
	api.GET("/roster/:date", s.GetDayRoster)

	e.GET("/health", s.Health)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer_id")
	}
	dinnerID, err := kernel.UUIDFromString(req.DinnerID)
	if err != nil {
		return badRequest(ctx, "invalid dinner_id")
	}
	style, err := catalog.ParseServingStyle(req.ServingStyle)
	if err != nil {
		return badRequest(ctx, "invalid serving_style")
	}
	items, err := itemSpecs(req.Items)
	if err != nil {
		return badRequest(ctx, "invalid items")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, dinnerID, style, req.DeliveryAt, req.Address, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status - advances an
// order along its lifecycle under roster authorization.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return badRequest(ctx, "invalid employee_id")
	}
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, employeeID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - cancels a pending
// order and releases its inventory reservations.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	requesterID, err := kernel.UUIDFromString(req.RequestedBy)
	if err != nil {
		return badRequest(ctx, "invalid requested_by")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, requesterID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ModifyOrderItems handles PUT /api/v1/orders/:orderId/items - replaces the
// extra items of a pending order and re-prices it.
func (s *Server) ModifyOrderItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ModifyOrderItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer_id")
	}
	items, err := itemSpecs(req.Items)
	if err != nil {
		return badRequest(ctx, "invalid items")
	}

	cmd, err := commands.NewModifyOrderItemsCommand(orderID, customerID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.modifyOrderItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/:orderId/payment - records a
// payment confirmation. Safe to retry.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrderStaff handles POST /api/v1/orders/:orderId/staff - records the
// employee handling one side of the order.
func (s *Server) AssignOrderStaff(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AssignOrderStaffRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return badRequest(ctx, "invalid employee_id")
	}
	duty, err := roster.ParseDuty(req.Duty)
	if err != nil {
		return badRequest(ctx, "invalid duty")
	}

	cmd, err := commands.NewAssignOrderStaffCommand(orderID, employeeID, duty)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignOrderStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders -
// returns the customer's order history, newest first.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:           o.ID.String(),
			Status:       o.Status,
			ServingStyle: o.ServingStyle,
			WindowStart:  o.WindowStart,
			WindowEnd:    o.WindowEnd,
			Address:      o.Address,
			TotalPrice:   int64(o.TotalPrice),
			Paid:         o.Paid,
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CheckInventoryAvailability handles GET /api/v1/inventory/availability -
// reports whether a quantity fits in the window covering a timestamp.
func (s *Server) CheckInventoryAvailability(ctx echo.Context) error {
	menuItemID, err := kernel.UUIDFromString(ctx.QueryParam("menu_item_id"))
	if err != nil {
		return badRequest(ctx, "invalid menu_item_id")
	}
	at, err := time.Parse(time.RFC3339, ctx.QueryParam("at"))
	if err != nil {
		return badRequest(ctx, "invalid at timestamp")
	}
	quantity, err := parsePositiveInt(ctx.QueryParam("quantity"))
	if err != nil {
		return badRequest(ctx, "invalid quantity")
	}

	query, err := queries.NewCheckInventoryAvailabilityQuery(menuItemID, at, quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	availability, err := s.checkAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, InventoryAvailability{
		MenuItemID:  availability.MenuItemID.String(),
		WindowStart: availability.WindowStart,
		WindowEnd:   availability.WindowEnd,
		Capacity:    availability.Capacity,
		Reserved:    availability.Reserved,
		Remaining:   availability.Remaining,
		Available:   availability.Available,
	})
}

// CheckAvailabilityBatch handles GET /api/v1/inventory/availability/batch -
// reports for several menu items at once whether any portion remains in the
// window covering a timestamp.
func (s *Server) CheckAvailabilityBatch(ctx echo.Context) error {
	menuItemIDs, err := parseUUIDs(splitCommaList(ctx.QueryParam("menu_item_ids")))
	if err != nil {
		return badRequest(ctx, "invalid menu_item_ids")
	}
	at, err := time.Parse(time.RFC3339, ctx.QueryParam("at"))
	if err != nil {
		return badRequest(ctx, "invalid at timestamp")
	}

	query, err := queries.NewCheckAvailabilityBatchQuery(menuItemIDs, at)
	if err != nil {
		return respondError(ctx, err)
	}

	batch, err := s.checkAvailabilityBatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	available := make(map[string]bool, len(batch.Available))
	for id, ok := range batch.Available {
		available[id.String()] = ok
	}

	return ctx.JSON(http.StatusOK, InventoryAvailabilityBatch{
		WindowStart: batch.WindowStart,
		WindowEnd:   batch.WindowEnd,
		Available:   available,
	})
}

// GetInventorySnapshot handles GET /api/v1/inventory/windows - lists
// materialized capacity windows starting inside [from, to).
func (s *Server) GetInventorySnapshot(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "invalid from timestamp")
	}
	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "invalid to timestamp")
	}

	query, err := queries.NewGetInventorySnapshotQuery(from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.getInventorySnapshotHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]InventoryWindow, len(snapshot))
	for i, w := range snapshot {
		response[i] = InventoryWindow{
			MenuItemID:  w.MenuItemID.String(),
			WindowStart: w.WindowStart,
			WindowEnd:   w.WindowEnd,
			Capacity:    w.Capacity,
			Reserved:    w.Reserved,
			Remaining:   w.Remaining,
			Notes:       w.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RestockInventory handles POST /api/v1/inventory/restock - sets a new
// capacity for the window covering a timestamp.
func (s *Server) RestockInventory(ctx echo.Context) error {
	var req RestockInventoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return badRequest(ctx, "invalid menu_item_id")
	}

	cmd, err := commands.NewRestockInventoryCommand(menuItemID, req.WindowAt, req.Capacity, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.restockInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDailyRoster handles PUT /api/v1/roster/:date - commits the duty
// roster for a service day, replacing any previous assignment.
func (s *Server) AssignDailyRoster(ctx echo.Context) error {
	date, err := kernel.ParseDate(ctx.Param("date"))
	if err != nil {
		return badRequest(ctx, "invalid date")
	}

	var req AssignRosterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cooking, err := parseUUIDs(req.Cooking)
	if err != nil {
		return badRequest(ctx, "invalid cooking ids")
	}
	delivery, err := parseUUIDs(req.Delivery)
	if err != nil {
		return badRequest(ctx, "invalid delivery ids")
	}

	cmd, err := commands.NewAssignDailyRosterCommand(date, cooking, delivery)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignDailyRosterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDayRoster handles GET /api/v1/roster/:date - returns the duty roster of
// a service day. A day without a roster yields empty duty lists.
func (s *Server) GetDayRoster(ctx echo.Context) error {
	date, err := kernel.ParseDate(ctx.Param("date"))
	if err != nil {
		return badRequest(ctx, "invalid date")
	}

	query, err := queries.NewGetDayRosterQuery(date)
	if err != nil {
		return respondError(ctx, err)
	}

	dayRoster, err := s.getDayRosterHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Roster{
		Date:     dayRoster.Date.String(),
		Cooking:  uuidStrings(dayRoster.Cooking),
		Delivery: uuidStrings(dayRoster.Delivery),
	})
}

func itemSpecs(items []OrderItem) ([]commands.ItemSpec, error) {
	specs := make([]commands.ItemSpec, 0, len(items))
	for _, item := range items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return nil, err
		}
		specs = append(specs, commands.ItemSpec{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}
	return specs, nil
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not greater than 0", n)
	}
	return n, nil
}

func splitCommaList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
