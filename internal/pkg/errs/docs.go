// Package errs provides the typed errors shared by the storefront engine.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) returned by Unwrap
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//
// Callers classify failures with errors.Is against the sentinels and read the
// struct fields with errors.As when they need the parameter name.
package errs
