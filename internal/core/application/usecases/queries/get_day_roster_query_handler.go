package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/roster"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDayRosterQueryHandler reads duty assignments straight from the
// duty_assignments table. Used by the staffing check job and the roster API.
type GetDayRosterQueryHandler struct {
	db *gorm.DB
}

// NewGetDayRosterQueryHandler creates a handler for day roster queries.
func NewGetDayRosterQueryHandler(db *gorm.DB) GetDayRosterQueryHandler {
	return GetDayRosterQueryHandler{db: db}
}

// Handle returns the duty lists for the queried date, sorted by employee ID
// within each duty for stable output.
func (h GetDayRosterQueryHandler) Handle(
	ctx context.Context,
	query GetDayRosterQuery,
) (GetDayRosterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDayRosterQueryResponse{}, err
	}

	resp := GetDayRosterQueryResponse{
		Date:     query.Date(),
		Cooking:  make([]kernel.UUID, 0),
		Delivery: make([]kernel.UUID, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			employee_id,
			duty
		FROM duty_assignments
		WHERE date = ?
		ORDER BY duty, employee_id
	`, query.Date().Time()).Rows()
	if err != nil {
		return GetDayRosterQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID uuid.UUID
		var dutyName string

		if err = rows.Scan(&employeeID, &dutyName); err != nil {
			return GetDayRosterQueryResponse{}, err
		}

		id, idErr := kernel.UUIDFromBytes(employeeID[:])
		if idErr != nil {
			return GetDayRosterQueryResponse{}, idErr
		}

		duty, dutyErr := roster.ParseDuty(dutyName)
		if dutyErr != nil {
			return GetDayRosterQueryResponse{}, dutyErr
		}

		switch duty {
		case roster.Cooking:
			resp.Cooking = append(resp.Cooking, id)
		case roster.Delivery:
			resp.Delivery = append(resp.Delivery, id)
		}
	}

	if err = rows.Err(); err != nil {
		return GetDayRosterQueryResponse{}, err
	}

	return resp, nil
}
