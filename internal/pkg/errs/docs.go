// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - an Error() method for formatting
//   - an Unwrap() method returning the sentinel, so errors.Is works
//
// Business-rule errors specific to one aggregate (capacity, staffing,
// lifecycle transitions) are defined next to that aggregate; errs covers only
// the generic validation and not-found cases shared by every layer.
package errs
