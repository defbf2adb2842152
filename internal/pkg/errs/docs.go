// Package errs provides the typed errors shared by the planning service.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the details,
// constructors with and without cause, and an Unwrap method returning the sentinel
// so callers can classify failures with errors.Is.
package errs
