// Package errs provides the typed errors shared by the ordering service.
//
// Every error type follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) that errors.Is matches
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//
// Application code maps these to user-facing messages; the raw Error() text is
// meant for logs only.
package errs
