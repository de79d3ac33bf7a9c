// Package guard provides the constructor guard pattern for application-layer
// command objects. Embedding a ConstructorGuard in a command struct makes a
// zero-value instance detectable, so handlers can reject commands that were
// not built through their validating constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value is "not constructed" and fails Validate.
//
// Example usage:
//
//	type CancelOrderCommand struct {
//	    referenceNumber string
//	    guard           guard.ConstructorGuard
//	}
//
//	func NewCancelOrderCommand(ref string) (CancelOrderCommand, error) {
//	    if ref == "" {
//	        return CancelOrderCommand{}, errs.NewValueIsRequiredError("referenceNumber")
//	    }
//	    return CancelOrderCommand{referenceNumber: ref, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CancelOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
