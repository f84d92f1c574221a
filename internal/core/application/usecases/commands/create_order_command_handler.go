package commands

import (
	"context"
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// reservation is one aggregated inventory demand of an order: a menu item and
// the total quantity needed across the dinner composition and extra lines.
type reservation struct {
	menuItemID kernel.UUID
	quantity   int
}

// CreateOrderCommandHandler handles the business logic for placing an order.
//
// Placing an order prices it against the catalog and the customer's loyalty
// standing, then reserves inventory for every needed menu item in the
// delivery window and stores the order — all in one transaction. If any
// single reservation fails, nothing is reserved and no order is stored.
type CreateOrderCommandHandler struct {
	uowFactory      OrderInventoryUoWFactory
	catalogStore    ports.CatalogStore
	loyaltyProvider ports.LoyaltyProvider
	pricingEngine   services.PricingEngine
	defaultCapacity int
	windowLength    time.Duration
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// defaultCapacity seeds lazily created inventory windows; windowLength is the
// inventory bucketing granularity.
func NewCreateOrderCommandHandler(
	uowFactory OrderInventoryUoWFactory,
	catalogStore ports.CatalogStore,
	loyaltyProvider ports.LoyaltyProvider,
	defaultCapacity int,
	windowLength time.Duration,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		catalogStore:    catalogStore,
		loyaltyProvider: loyaltyProvider,
		pricingEngine:   services.NewPricingEngine(),
		defaultCapacity: defaultCapacity,
		windowLength:    windowLength,
	}
}

// Handle processes the order placement command.
//
// Storage conflicts on the inventory rows are retried with bounded backoff;
// business rejections (unknown dinner, disallowed style, insufficient
// capacity) surface immediately.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	dinner, err := h.catalogStore.GetDinner(ctx, cmd.DinnerID())
	if err != nil {
		return err
	}

	items, err := resolveItems(ctx, h.catalogStore, cmd.Items())
	if err != nil {
		return err
	}

	loyaltyOrderCount, err := h.loyaltyProvider.CompletedOrderCount(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	quote, err := h.pricingEngine.Price(dinner, cmd.ServingStyle(), items, loyaltyOrderCount)
	if err != nil {
		return err
	}

	window, err := kernel.WindowContaining(cmd.DeliveryAt(), h.windowLength)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.DinnerID(),
		cmd.ServingStyle(),
		window,
		cmd.Address(),
		items,
		quote.Total,
		loyaltyOrderCount,
		time.Now(),
	)
	if err != nil {
		return err
	}

	demand := aggregateDemand(dinner.Components(), items)

	return retryStorage(ctx, func() error {
		return h.reserveAndStore(ctx, newOrder, window, demand)
	})
}

// reserveAndStore is one transactional attempt: reserve every demanded
// quantity and persist the order, or roll everything back.
func (h CreateOrderCommandHandler) reserveAndStore(
	ctx context.Context,
	newOrder *order.Order,
	window kernel.TimeWindow,
	demand []reservation,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	for _, d := range demand {
		w, err := inventoryRepo.GetOrCreate(ctx, d.menuItemID, window, h.defaultCapacity)
		if err != nil {
			return err
		}

		if err = w.Reserve(d.quantity); err != nil {
			return err
		}

		if err = inventoryRepo.Update(ctx, w); err != nil {
			return err
		}
	}

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// aggregateDemand sums the per-item quantities of the dinner composition and
// the extra lines. The result is ordered by menu item id so concurrent orders
// always lock inventory rows in the same sequence.
func aggregateDemand(components []catalog.Component, items []order.Item) []reservation {
	totals := make(map[kernel.UUID]int)
	for _, c := range components {
		totals[c.MenuItemID] += c.Quantity
	}
	for _, item := range items {
		totals[item.MenuItemID()] += item.Quantity()
	}

	demand := make([]reservation, 0, len(totals))
	for id, quantity := range totals {
		demand = append(demand, reservation{menuItemID: id, quantity: quantity})
	}
	sort.Slice(demand, func(i, j int) bool {
		return demand[i].menuItemID.String() < demand[j].menuItemID.String()
	})

	return demand
}
