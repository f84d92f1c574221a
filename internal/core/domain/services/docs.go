// Package services contains stateless domain services: logic that spans
// aggregates and therefore belongs to no single one of them.
//
// PricingEngine computes order totals from catalog data, the chosen serving
// style, additional items, and the customer's loyalty standing. It is pure:
// given the same inputs it always produces the same quote, which keeps
// pricing auditable and trivially testable.
package services
