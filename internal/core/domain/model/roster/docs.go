// Package roster contains the DayAssignment aggregate: for each calendar
// date, the sets of employees holding cooking duty and delivery duty.
//
// The aggregate enforces the staffing rules before any mutation is stored:
// the two duty sets must be disjoint (no double duty on one date) and each
// must reach the configured minimum headcount. Committed assignments are the
// sole authority for order status transitions — holding the employee role is
// necessary but not sufficient, the specific duty for the specific date is
// required.
package roster
