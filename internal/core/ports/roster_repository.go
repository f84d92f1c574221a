package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/roster"
)

// RosterRepository defines the persistence contract for daily duty rosters.
type RosterRepository interface {
	// Upsert stores the roster for its date, replacing any previous
	// assignment for that date in one transaction.
	Upsert(ctx context.Context, aggregate *roster.DayAssignment) error

	// GetByDate retrieves the roster for a calendar date.
	// Returns errs.ObjectNotFoundError when no roster was committed for it.
	GetByDate(ctx context.Context, date kernel.Date) (*roster.DayAssignment, error)
}
