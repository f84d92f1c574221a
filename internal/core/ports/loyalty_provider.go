package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// LoyaltyProvider reports customer loyalty standing used for discounts.
type LoyaltyProvider interface {
	// CompletedOrderCount returns how many orders the customer has
	// completed. Unknown customers count as zero.
	CompletedOrderCount(ctx context.Context, customerID kernel.UUID) (int, error)
}
