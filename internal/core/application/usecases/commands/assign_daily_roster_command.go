package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDailyRosterCommandIsNotConstructed = errors.New(
	"AssignDailyRosterCommand must be created via NewAssignDailyRosterCommand constructor",
)

// AssignDailyRosterCommand represents a manager's request to commit the duty
// roster for one calendar date, replacing any previous roster for that date.
type AssignDailyRosterCommand struct { //nolint:recvcheck //using for validation
	date     kernel.Date
	cooking  []kernel.UUID
	delivery []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDailyRosterCommand creates a command to commit a daily roster.
// Staffing rules (headcount, disjoint duties) are enforced by the aggregate
// when the handler builds it.
func NewAssignDailyRosterCommand(
	date kernel.Date,
	cooking []kernel.UUID,
	delivery []kernel.UUID,
) (AssignDailyRosterCommand, error) {
	cmd := AssignDailyRosterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDate(date),
		cmd.setEmployees(cooking, delivery),
	); err != nil {
		return AssignDailyRosterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDailyRosterCommand) Validate() error {
	return c.guard.Validate(ErrAssignDailyRosterCommandIsNotConstructed)
}

// Date returns the date the roster covers.
func (c AssignDailyRosterCommand) Date() kernel.Date {
	return c.date
}

// Cooking returns the employees requested for cooking duty.
func (c AssignDailyRosterCommand) Cooking() []kernel.UUID {
	out := make([]kernel.UUID, len(c.cooking))
	copy(out, c.cooking)
	return out
}

// Delivery returns the employees requested for delivery duty.
func (c AssignDailyRosterCommand) Delivery() []kernel.UUID {
	out := make([]kernel.UUID, len(c.delivery))
	copy(out, c.delivery)
	return out
}

func (c *AssignDailyRosterCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	c.date = date
	return nil
}

func (c *AssignDailyRosterCommand) setEmployees(cooking, delivery []kernel.UUID) error {
	for _, id := range append(append([]kernel.UUID{}, cooking...), delivery...) {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("employees", err)
		}
	}

	c.cooking = make([]kernel.UUID, len(cooking))
	copy(c.cooking, cooking)
	c.delivery = make([]kernel.UUID, len(delivery))
	copy(c.delivery, delivery)
	return nil
}
