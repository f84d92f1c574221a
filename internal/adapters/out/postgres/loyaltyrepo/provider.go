// Package loyaltyrepo derives a customer's loyalty standing from order
// history. A completed order is one that was delivered and paid for; the
// count feeds the discount ladder at pricing time.
package loyaltyrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormLoyaltyProvider implements LoyaltyProvider by counting delivered, paid
// orders in the orders table.
type GormLoyaltyProvider struct {
	db *gorm.DB
}

// NewGormLoyaltyProvider creates a new GORM loyalty provider.
func NewGormLoyaltyProvider(db *gorm.DB) *GormLoyaltyProvider {
	return &GormLoyaltyProvider{db: db}
}

// CompletedOrderCount returns how many delivered and paid orders the
// customer has. Unknown customers count as zero.
func (p *GormLoyaltyProvider) CompletedOrderCount(ctx context.Context, customerID kernel.UUID) (int, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := p.db.WithContext(ctx).
		Raw(
			"SELECT count(*) FROM orders WHERE customer_id = ? AND status = ? AND paid",
			customerID.Bytes(),
			order.Delivered.String(),
		).
		Scan(&count).
		Error; err != nil {
		return 0, err
	}

	return int(count), nil
}
