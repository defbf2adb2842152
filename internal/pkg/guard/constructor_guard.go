// Package guard holds the construction and contract checks used across the domain model.
//
// ConstructorGuard marks values built through their constructor so that zero values can
// be told apart from real ones. Ensure asserts programmer contracts: a failed Ensure is a
// bug in the caller, never bad input, and it panics with a *ContractViolation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero value when no specific
// error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in domain values and set only by their constructors.
//
// Example:
//
//	type Task struct {
//	    weight int
//	    guard  guard.ConstructorGuard
//	}
//
//	func (t *Task) Validate() error {
//	    return t.guard.Validate(ErrTaskIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, validationError otherwise
// (ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
