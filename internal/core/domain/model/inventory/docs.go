// Package inventory contains the Window aggregate: per menu item and per
// fixed-length time window, the prepared-food capacity, the reserved count,
// and the operations that mutate them (reserve, release, restock).
//
// The hard invariant of this package is 0 <= reserved <= capacity. The
// aggregate enforces it on every mutation; the persistence adapter pairs it
// with row-level locking so concurrent reservations serialize and can never
// jointly overcommit a window.
package inventory
