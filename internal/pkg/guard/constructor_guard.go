// Package guard provides the constructor guard pattern for application-layer
// objects such as commands and queries. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable, so handlers can reject objects that were
// not created through their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor function.
// The zero value fails validation, which prevents accidental use of
// directly-instantiated commands and queries.
//
// Example:
//
//	type AcceptTaskCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewAcceptTaskCommand(orderID kernel.UUID) (AcceptTaskCommand, error) {
//	    ...
//	    return AcceptTaskCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
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
