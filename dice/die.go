// Package dice provides multi-sided value types (numeric dice, labeled
// dice, coins) built on a single closed-form rotation engine, plus rollers
// that pick a new side using an injected randomness source.
package dice

import "errors"

// ErrOutOfRange is returned by constructors when a raw value, position, or
// label set cannot represent a valid side.
//
// It is the only recoverable error class in this package; every other
// misuse is a programming error and panics.
var ErrOutOfRange = errors.New("dice: value out of range")

// Polyhedral is any value with a fixed, positive number of sides.
//
// Invariant: Sides() is constant for the lifetime of a value and >= 1.
type Polyhedral interface {
	// Sides returns the total number of sides.
	Sides() int
}

// Rotatable is a value that can produce a copy of itself rotated by a
// signed number of sides.
//
// Postcondition: Rotate(0) returns a value equal to the receiver, and
// Rotate(amount) wraps for any amount, however large or negative.
type Rotatable[T any] interface {
	Rotate(amount int) T
}

// Die combines the side count and immutable rotation capabilities. It is
// the constraint rollers use for the returning operation family.
type Die[T any] interface {
	Polyhedral
	Rotatable[T]
}

// MutDie is the mutating counterpart of Die: RotateMut rotates the value
// in place instead of returning a copy.
type MutDie interface {
	Polyhedral
	// RotateMut rotates the value in place by amount sides.
	RotateMut(amount int)
}
