package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// RestockInventoryCommandHandler handles capacity adjustments on inventory
// windows. Windows that were never materialized are created first, so a
// restock can run ahead of the first order.
type RestockInventoryCommandHandler struct {
	uowFactory      InventoryUoWFactory
	defaultCapacity int
	windowLength    time.Duration
}

// NewRestockInventoryCommandHandler creates a handler for restocking.
func NewRestockInventoryCommandHandler(
	uowFactory InventoryUoWFactory,
	defaultCapacity int,
	windowLength time.Duration,
) RestockInventoryCommandHandler {
	return RestockInventoryCommandHandler{
		uowFactory:      uowFactory,
		defaultCapacity: defaultCapacity,
		windowLength:    windowLength,
	}
}

// Handle processes the restock command.
//
// Returns inventory.InvalidCapacityError when the new capacity is not
// positive or undercuts quantities already reserved.
func (h RestockInventoryCommandHandler) Handle(ctx context.Context, cmd RestockInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	window, err := kernel.WindowContaining(cmd.WindowAt(), h.windowLength)
	if err != nil {
		return err
	}

	return retryStorage(ctx, func() error {
		return h.restock(ctx, cmd, window)
	})
}

func (h RestockInventoryCommandHandler) restock(
	ctx context.Context, cmd RestockInventoryCommand, window kernel.TimeWindow,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	w, err := inventoryRepo.GetOrCreate(ctx, cmd.MenuItemID(), window, h.defaultCapacity)
	if err != nil {
		return err
	}

	if err = w.Restock(cmd.NewCapacity(), cmd.Notes()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
