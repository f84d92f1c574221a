package catalogrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogStore implements CatalogStore over the synced catalog tables.
// Lookups run outside the unit of work: catalog data is immutable reference
// data and needs no transaction coordination with the aggregates.
type GormCatalogStore struct {
	db *gorm.DB
}

// NewGormCatalogStore creates a new GORM catalog store.
func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

// GetDinner retrieves a dinner with its component list by id.
func (s *GormCatalogStore) GetDinner(ctx context.Context, id kernel.UUID) (*catalog.Dinner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DinnerDTO
	if err := s.db.WithContext(ctx).
		Preload("Components").
		First(&dto, "id = ?", id.Bytes()).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dinner", id.String())
		}
		return nil, err
	}

	return dinnerToDomain(dto)
}

// GetMenuItems retrieves the menu items for the given ids. Unknown ids are
// omitted from the result rather than failing the whole lookup.
func (s *GormCatalogStore) GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]*catalog.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := s.db.WithContext(ctx).
		Find(&dtos, "id IN ?", rawIDs).
		Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
