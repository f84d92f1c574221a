package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/roster"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusForError maps domain failures to HTTP status codes. Anything
// unclassified is treated as an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrUnauthorizedTransition):
		return http.StatusForbidden
	case errors.Is(err, inventory.ErrInsufficientCapacity),
		errors.Is(err, inventory.ErrInvalidCapacity),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrOrderAlreadyInProgress),
		errors.Is(err, order.ErrOrderIsNotModifiable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrInvalidServingStyle),
		errors.Is(err, roster.ErrDualAssignment),
		errors.Is(err, roster.ErrInsufficientStaff),
		errors.Is(err, roster.ErrUnknownEmployee):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body for a failed operation. Internal
// errors are masked so storage details never leak to clients.
func respondError(ctx echo.Context, err error) error {
	code := statusForError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

// badRequest writes a 400 error body for malformed input.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
