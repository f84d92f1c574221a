package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/roster"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AssignDailyRosterCommandHandler commits the duty roster for a date.
//
// Rosters are validated before anything is stored: every id must resolve in
// the employee directory, the duty sets must be disjoint, and each set must
// reach the minimum headcount. Past dates are read-only.
type AssignDailyRosterCommandHandler struct {
	uowFactory        RosterUoWFactory
	employeeDirectory ports.EmployeeDirectory
	minHeadcount      int
}

// NewAssignDailyRosterCommandHandler creates a handler for roster commits.
func NewAssignDailyRosterCommandHandler(
	uowFactory RosterUoWFactory,
	employeeDirectory ports.EmployeeDirectory,
	minHeadcount int,
) AssignDailyRosterCommandHandler {
	return AssignDailyRosterCommandHandler{
		uowFactory:        uowFactory,
		employeeDirectory: employeeDirectory,
		minHeadcount:      minHeadcount,
	}
}

// Handle processes the roster commit command.
//
// Returns roster.UnknownEmployeeError for unresolved ids, and the aggregate's
// staffing errors for rule violations. A roster for a date before today is
// rejected as invalid.
func (h AssignDailyRosterCommandHandler) Handle(ctx context.Context, cmd AssignDailyRosterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	today := kernel.DateFromTime(time.Now())
	if cmd.Date().Before(today) {
		return errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%s is in the past", cmd.Date()),
		)
	}

	for _, id := range append(cmd.Cooking(), cmd.Delivery()...) {
		exists, err := h.employeeDirectory.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return roster.NewUnknownEmployeeError(id.String())
		}
	}

	assignment, err := roster.NewDayAssignment(cmd.Date(), cmd.Cooking(), cmd.Delivery(), h.minHeadcount)
	if err != nil {
		return err
	}

	return retryStorage(ctx, func() error {
		return h.store(ctx, assignment)
	})
}

func (h AssignDailyRosterCommandHandler) store(ctx context.Context, assignment *roster.DayAssignment) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RosterRepository().Upsert(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
