// Package catalog contains the read-only menu data the fulfillment engine
// consumes: dinners, menu items, and serving styles. The catalog itself is
// owned by an external admin system; this package only models the shapes and
// the style-availability rules the engine needs for pricing and validation.
package catalog
