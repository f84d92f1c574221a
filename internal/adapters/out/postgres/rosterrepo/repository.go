package rosterrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/roster"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRosterRepository implements RosterRepository using GORM.
//
// Rosters are keyed by date rather than by UUID, so this repository does not
// participate in aggregate tracking.
type GormRosterRepository struct {
	db           *gorm.DB
	minHeadcount int
}

// NewGormRosterRepository creates a new GORM roster repository. The
// minHeadcount must match the value rosters were committed with, so restored
// aggregates pass the staffing invariant checks.
func NewGormRosterRepository(db *gorm.DB, minHeadcount int) *GormRosterRepository {
	return &GormRosterRepository{
		db:           db,
		minHeadcount: minHeadcount,
	}
}

// Upsert stores the roster for its date, replacing any previous assignment.
// Delete-then-insert keeps the replacement atomic inside the surrounding
// transaction.
func (r *GormRosterRepository) Upsert(ctx context.Context, aggregate *roster.DayAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rows := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).
		Where("date = ?", aggregate.Date().Time()).
		Delete(&DutyAssignmentDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

// GetByDate retrieves the roster for a calendar date.
func (r *GormRosterRepository) GetByDate(ctx context.Context, date kernel.Date) (*roster.DayAssignment, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var rows []DutyAssignmentDTO
	if err := r.db.WithContext(ctx).
		Find(&rows, "date = ?", date.Time()).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("roster", date.String())
	}

	return toDomain(date, rows, r.minHeadcount)
}
