// Package rosterrepo provides data transfer objects and mapping functions for
// daily duty roster persistence. One row per (date, employee) pair; the
// aggregate is reassembled by grouping the rows of a date.
package rosterrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/roster"

	"github.com/google/uuid"
)

// DutyAssignmentDTO represents one employee's duty on one service day.
type DutyAssignmentDTO struct {
	Date       time.Time `gorm:"type:date;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Duty       string    `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for duty assignments.
func (DutyAssignmentDTO) TableName() string {
	return "duty_assignments"
}

// fromDomain flattens a roster aggregate into its duty rows.
func fromDomain(a *roster.DayAssignment) []DutyAssignmentDTO {
	date := a.Date().Time()
	rows := make([]DutyAssignmentDTO, 0, len(a.Cooking())+len(a.Delivery()))

	for _, id := range a.Cooking() {
		rows = append(rows, DutyAssignmentDTO{
			Date:       date,
			EmployeeID: id.Bytes(),
			Duty:       roster.Cooking.String(),
		})
	}
	for _, id := range a.Delivery() {
		rows = append(rows, DutyAssignmentDTO{
			Date:       date,
			EmployeeID: id.Bytes(),
			Duty:       roster.Delivery.String(),
		})
	}

	return rows
}

// toDomain regroups duty rows into a roster aggregate, re-checking the
// staffing invariants against minHeadcount.
func toDomain(date kernel.Date, rows []DutyAssignmentDTO, minHeadcount int) (*roster.DayAssignment, error) {
	cooking := make([]kernel.UUID, 0, len(rows))
	delivery := make([]kernel.UUID, 0, len(rows))

	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.EmployeeID[:])
		if err != nil {
			return nil, err
		}

		duty, err := roster.ParseDuty(row.Duty)
		if err != nil {
			return nil, err
		}

		switch duty {
		case roster.Cooking:
			cooking = append(cooking, id)
		case roster.Delivery:
			delivery = append(delivery, id)
		}
	}

	return roster.RestoreDayAssignment(date, cooking, delivery, minHeadcount)
}
