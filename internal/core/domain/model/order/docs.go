// Package order contains the Order aggregate root and its lifecycle state
// machine.
//
// An order moves along a single forward path:
//
//	pending ──> cooking ──> ready ──> out_for_delivery ──> delivered
//	   │
//	   └──> cancelled
//
// Every forward transition requires the acting employee to hold the matching
// duty on the order's delivery date: cooking duty for kitchen transitions,
// delivery duty for courier transitions. Cancellation is customer-initiated
// and only possible while the order is still pending.
package order
