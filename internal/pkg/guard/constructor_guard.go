// Package guard provides the ConstructorGuard pattern used by commands,
// queries, and value objects to reject zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is passed and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable: the internal flag is only set by
// NewConstructorGuard, so a struct literal or zero value fails Validate.
//
// Example usage:
//
//	type Money struct {
//	    amount   int
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int, currency string) (Money, error) {
//	    if currency == "" {
//	        return Money{}, errors.New("currency is required")
//	    }
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// guards it returns validationError, or ErrDefaultConstructorGuard when
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
