package commands

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/roster"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// maxStorageRetries bounds how many times a transactional operation is
// re-attempted after a storage conflict before the error surfaces.
const maxStorageRetries = 3

// isDomainError reports whether the failure is a business rule rejection.
// Retrying cannot fix those, so they must not burn retry attempts.
func isDomainError(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, inventory.ErrInsufficientCapacity) ||
		errors.Is(err, inventory.ErrInvalidCapacity) ||
		errors.Is(err, order.ErrIllegalTransition) ||
		errors.Is(err, order.ErrUnauthorizedTransition) ||
		errors.Is(err, order.ErrOrderAlreadyInProgress) ||
		errors.Is(err, order.ErrOrderIsNotModifiable) ||
		errors.Is(err, roster.ErrDualAssignment) ||
		errors.Is(err, roster.ErrInsufficientStaff) ||
		errors.Is(err, roster.ErrUnknownEmployee) ||
		errors.Is(err, services.ErrInvalidServingStyle)
}

// retryStorage runs op with bounded exponential backoff. Domain errors abort
// immediately; anything else is treated as a transient storage conflict.
func retryStorage(ctx context.Context, op func() error) error {
	wrapped := func() error {
		if err := op(); err != nil {
			if isDomainError(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxStorageRetries),
		ctx,
	)
	return backoff.Retry(wrapped, policy)
}
