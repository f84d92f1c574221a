// Package kernel contains the shared value objects of the fulfillment domain:
// identifiers, money, calendar dates, and inventory time windows.
//
// All types in this package are immutable value objects. Zero values are
// invalid where a constructor exists; use the provided factory functions and
// check Validate() when reconstructing values from persistence or external
// input.
package kernel
