package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ModifyOrderItemsCommandHandler handles replacement of a pending order's
// extra item lines.
//
// The order is re-priced with current catalog prices for the new lines but
// with the loyalty discount captured at placement time, so the discount a
// customer was quoted never shifts mid-order. Inventory reservations are not
// adjusted here: reserved dinner portions dominate window capacity and the
// extra-line delta is absorbed by the cancellation release path.
type ModifyOrderItemsCommandHandler struct {
	uowFactory    OrderUoWFactory
	catalogStore  ports.CatalogStore
	pricingEngine services.PricingEngine
}

// NewModifyOrderItemsCommandHandler creates a handler for item modification.
func NewModifyOrderItemsCommandHandler(
	uowFactory OrderUoWFactory,
	catalogStore ports.CatalogStore,
) ModifyOrderItemsCommandHandler {
	return ModifyOrderItemsCommandHandler{
		uowFactory:    uowFactory,
		catalogStore:  catalogStore,
		pricingEngine: services.NewPricingEngine(),
	}
}

// Handle processes the modification command.
//
// Returns order.ErrOrderIsNotModifiable once the order has left the pending
// state, and errs.ObjectNotFoundError for unknown or foreign orders.
func (h ModifyOrderItemsCommandHandler) Handle(ctx context.Context, cmd ModifyOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := resolveItems(ctx, h.catalogStore, cmd.Items())
	if err != nil {
		return err
	}

	return retryStorage(ctx, func() error {
		return h.replaceItems(ctx, cmd, items)
	})
}

func (h ModifyOrderItemsCommandHandler) replaceItems(
	ctx context.Context, cmd ModifyOrderItemsCommand, items []order.Item,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID().String())
	}

	dinner, err := h.catalogStore.GetDinner(ctx, o.DinnerID())
	if err != nil {
		return err
	}

	quote, err := h.pricingEngine.Price(dinner, o.ServingStyle(), items, o.LoyaltyOrderCount())
	if err != nil {
		return err
	}

	if err = o.ReplaceItems(items, quote.Total); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
