package inventoryrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetOrCreate retrieves the window for the (menuItemID, window) pair,
// materializing it with defaultCapacity when it does not exist yet. The
// insert uses ON CONFLICT DO NOTHING so two transactions racing on the same
// missing window both proceed to the locked read.
func (r *GormInventoryRepository) GetOrCreate(
	ctx context.Context,
	menuItemID kernel.UUID,
	window kernel.TimeWindow,
	defaultCapacity int,
) (*inventory.Window, error) {
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if defaultCapacity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"defaultCapacity",
			fmt.Errorf("%d is negative", defaultCapacity),
		)
	}

	seed := InventoryWindowDTO{
		MenuItemID:  menuItemID.Bytes(),
		WindowStart: window.Start(),
		WindowEnd:   window.End(),
		Capacity:    defaultCapacity,
		Reserved:    0,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error; err != nil {
		return nil, err
	}

	var dto InventoryWindowDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "menu_item_id = ? AND window_start = ?", menuItemID.Bytes(), window.Start()).
		Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Get retrieves the window for the (menuItemID, window) pair without locking
// or creating it.
func (r *GormInventoryRepository) Get(
	ctx context.Context,
	menuItemID kernel.UUID,
	window kernel.TimeWindow,
) (*inventory.Window, error) {
	return r.get(ctx, menuItemID, window, false)
}

// GetForUpdate retrieves an existing window with a row lock so releases
// serialize with concurrent reservations on the same window.
func (r *GormInventoryRepository) GetForUpdate(
	ctx context.Context,
	menuItemID kernel.UUID,
	window kernel.TimeWindow,
) (*inventory.Window, error) {
	return r.get(ctx, menuItemID, window, true)
}

func (r *GormInventoryRepository) get(
	ctx context.Context,
	menuItemID kernel.UUID,
	window kernel.TimeWindow,
	lock bool,
) (*inventory.Window, error) {
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto InventoryWindowDTO
	if err := tx.
		First(&dto, "menu_item_id = ? AND window_start = ?", menuItemID.Bytes(), window.Start()).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"inventory window",
				fmt.Sprintf("%s %s", menuItemID, window),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the capacity, reserved count, and notes of a window.
// Zero values are written explicitly so a fully released window round-trips.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Window) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InventoryWindowDTO{}).
		Where("menu_item_id = ? AND window_start = ?", dto.MenuItemID, dto.WindowStart).
		Select("capacity", "reserved", "notes").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.MenuItemID(), aggregate)
	return nil
}
