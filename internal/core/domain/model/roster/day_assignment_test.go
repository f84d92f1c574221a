package roster_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMinHeadcount = 5

func testDate(t *testing.T) kernel.Date {
	t.Helper()
	return kernel.NewDate(2025, 6, 1)
}

func newCrew(n int) []kernel.UUID {
	crew := make([]kernel.UUID, 0, n)
	for i := 0; i < n; i++ {
		crew = append(crew, kernel.NewUUID())
	}
	return crew
}

func TestNewDayAssignment(t *testing.T) {
	t.Run("valid_roster", func(t *testing.T) {
		cooking := newCrew(5)
		delivery := newCrew(5)

		a, err := roster.NewDayAssignment(testDate(t), cooking, delivery, testMinHeadcount)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, testDate(t).IsEqual(a.Date()))
		assert.Len(t, a.Cooking(), 5)
		assert.Len(t, a.Delivery(), 5)
	})

	t.Run("rejects_understaffed_cooking", func(t *testing.T) {
		_, err := roster.NewDayAssignment(testDate(t), newCrew(4), newCrew(5), testMinHeadcount)

		require.ErrorIs(t, err, roster.ErrInsufficientStaff)
		var staffErr *roster.InsufficientStaffError
		require.ErrorAs(t, err, &staffErr)
		assert.Equal(t, roster.Cooking, staffErr.Duty)
		assert.Equal(t, 4, staffErr.Assigned)
		assert.Equal(t, 5, staffErr.Required)
	})

	t.Run("rejects_understaffed_delivery", func(t *testing.T) {
		_, err := roster.NewDayAssignment(testDate(t), newCrew(5), newCrew(3), testMinHeadcount)

		require.ErrorIs(t, err, roster.ErrInsufficientStaff)
	})

	t.Run("rejects_employee_on_both_duties", func(t *testing.T) {
		shared := kernel.NewUUID()
		cooking := append(newCrew(4), shared)
		delivery := append(newCrew(4), shared)

		_, err := roster.NewDayAssignment(testDate(t), cooking, delivery, testMinHeadcount)

		require.ErrorIs(t, err, roster.ErrDualAssignment)
		var dualErr *roster.DualAssignmentError
		require.ErrorAs(t, err, &dualErr)
		assert.Equal(t, shared.String(), dualErr.EmployeeID)
	})

	t.Run("duplicates_collapse_before_headcount_check", func(t *testing.T) {
		cooking := newCrew(4)
		cooking = append(cooking, cooking[0])

		_, err := roster.NewDayAssignment(testDate(t), cooking, newCrew(5), testMinHeadcount)

		require.ErrorIs(t, err, roster.ErrInsufficientStaff)
	})

	t.Run("rejects_invalid_employee_id", func(t *testing.T) {
		cooking := append(newCrew(4), kernel.UUID{})

		_, err := roster.NewDayAssignment(testDate(t), cooking, newCrew(5), testMinHeadcount)

		require.Error(t, err)
	})

	t.Run("rejects_zero_date", func(t *testing.T) {
		_, err := roster.NewDayAssignment(kernel.Date{}, newCrew(5), newCrew(5), testMinHeadcount)
		require.Error(t, err)
	})
}

func TestDayAssignment_IsAuthorized(t *testing.T) {
	cooking := newCrew(5)
	delivery := newCrew(5)

	a, err := roster.NewDayAssignment(testDate(t), cooking, delivery, testMinHeadcount)
	require.NoError(t, err)

	t.Run("cooking_employee_holds_cooking_duty_only", func(t *testing.T) {
		assert.True(t, a.IsAuthorized(cooking[0], roster.Cooking))
		assert.False(t, a.IsAuthorized(cooking[0], roster.Delivery))
	})

	t.Run("delivery_employee_holds_delivery_duty_only", func(t *testing.T) {
		assert.True(t, a.IsAuthorized(delivery[0], roster.Delivery))
		assert.False(t, a.IsAuthorized(delivery[0], roster.Cooking))
	})

	t.Run("unassigned_employee_holds_nothing", func(t *testing.T) {
		outsider := kernel.NewUUID()
		assert.False(t, a.IsAuthorized(outsider, roster.Cooking))
		assert.False(t, a.IsAuthorized(outsider, roster.Delivery))
	})
}

func TestDayAssignment_Getters_ReturnCopies(t *testing.T) {
	a, err := roster.NewDayAssignment(testDate(t), newCrew(5), newCrew(5), testMinHeadcount)
	require.NoError(t, err)

	got := a.Cooking()
	got[0] = kernel.NewUUID()

	assert.NotEqual(t, got[0].String(), a.Cooking()[0].String())
}

func TestParseDuty(t *testing.T) {
	t.Run("parses_known_duties", func(t *testing.T) {
		d, err := roster.ParseDuty("cooking")
		require.NoError(t, err)
		assert.Equal(t, roster.Cooking, d)

		d, err = roster.ParseDuty("delivery")
		require.NoError(t, err)
		assert.Equal(t, roster.Delivery, d)
	})

	t.Run("rejects_unknown_duty", func(t *testing.T) {
		_, err := roster.ParseDuty("dishwashing")
		require.Error(t, err)
	})
}

func TestDayAssignment_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var a roster.DayAssignment
		require.ErrorIs(t, a.Validate(), roster.ErrDayAssignmentIsNotConstructed)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var a *roster.DayAssignment
		require.ErrorIs(t, a.Validate(), roster.ErrDayAssignmentIsNotConstructed)
	})
}
