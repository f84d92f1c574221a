package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated order cancellation.
//
// Cancelling a pending order releases every inventory reservation the order
// holds in its delivery window, in the same transaction that flips the
// status. Orders that already entered cooking cannot be cancelled.
type CancelOrderCommandHandler struct {
	uowFactory        OrderInventoryUoWFactory
	catalogStore      ports.CatalogStore
	employeeDirectory ports.EmployeeDirectory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// The catalog store is needed to resolve the dinner composition whose
// portions were reserved at placement time; the employee directory resolves
// admin requesters cancelling on a customer's behalf.
func NewCancelOrderCommandHandler(
	uowFactory OrderInventoryUoWFactory,
	catalogStore ports.CatalogStore,
	employeeDirectory ports.EmployeeDirectory,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:        uowFactory,
		catalogStore:      catalogStore,
		employeeDirectory: employeeDirectory,
	}
}

// Handle processes the cancellation command.
//
// Returns errs.ObjectNotFoundError when the order does not exist or the
// requester is neither the owning customer nor an admin, and
// order.OrderAlreadyInProgressError when the order has left the pending
// state.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryStorage(ctx, func() error {
		return h.cancelAndRelease(ctx, cmd)
	})
}

func (h CancelOrderCommandHandler) cancelAndRelease(ctx context.Context, cmd CancelOrderCommand) error {
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

	// Ownership mismatches read as not-found so order ids cannot be probed.
	// Admins may cancel any order on the customer's behalf.
	if !o.CustomerID().IsEqual(cmd.RequesterID()) {
		role, err := h.employeeDirectory.Role(ctx, cmd.RequesterID())
		if err != nil {
			return err
		}
		if role != ports.RoleAdmin {
			return errs.NewObjectNotFoundError("orderID", cmd.OrderID().String())
		}
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = h.releaseReservations(ctx, uow, o); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseReservations returns the order's reserved portions to the inventory
// windows they were taken from. Missing windows and over-releases indicate
// earlier bookkeeping anomalies; they are logged and skipped rather than
// failing the cancellation.
func (h CancelOrderCommandHandler) releaseReservations(
	ctx context.Context, uow OrderInventoryUoW, o *order.Order,
) error {
	dinner, err := h.catalogStore.GetDinner(ctx, o.DinnerID())
	if err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	for _, d := range aggregateDemand(dinner.Components(), o.Items()) {
		// Locked read: the release must not overwrite a reservation
		// committed by a concurrent placement on the same window.
		w, err := inventoryRepo.GetForUpdate(ctx, d.menuItemID, o.DeliveryWindow())
		if errors.Is(err, errs.ErrObjectNotFound) {
			slog.Warn("no inventory window for reserved item",
				"order_id", o.ID().String(),
				"menu_item_id", d.menuItemID.String())
			continue
		}
		if err != nil {
			return err
		}

		clamped, err := w.Release(d.quantity)
		if err != nil {
			return err
		}
		if clamped {
			slog.Warn("inventory release clamped at zero",
				"order_id", o.ID().String(),
				"menu_item_id", d.menuItemID.String(),
				"quantity", d.quantity)
		}

		if err = inventoryRepo.Update(ctx, w); err != nil {
			return err
		}
	}

	return nil
}
