package dice

import "fmt"

// SliceDie is a die whose sides are an ordered, fixed set of arbitrary
// labels (not necessarily unique). It borrows the label slice read-only:
// no operation mutates it, and the caller must keep it alive and unchanged
// for as long as any die derived from it exists.
//
// The zero value is not a valid die; use a constructor.
//
// Invariant: 0 <= position < len(labels) for every constructed die.
type SliceDie[T any] struct {
	labels   []T
	position int
}

// NewSliceDie creates a die pointing at the first label.
//
// Postcondition: Position() == 0, or ErrOutOfRange if labels is empty.
func NewSliceDie[T any](labels []T) (SliceDie[T], error) {
	if len(labels) == 0 {
		return SliceDie[T]{}, fmt.Errorf("%w: label set must not be empty", ErrOutOfRange)
	}
	return SliceDie[T]{labels: labels}, nil
}

// SliceDieAt creates a die pointing at the given position.
//
// Postcondition: Position() == position, or ErrOutOfRange if labels is
// empty or position is outside [0, len(labels)).
func SliceDieAt[T any](labels []T, position int) (SliceDie[T], error) {
	d, err := NewSliceDie(labels)
	if err != nil {
		return SliceDie[T]{}, err
	}
	if position < 0 || position >= len(labels) {
		return SliceDie[T]{}, fmt.Errorf("%w: position %d not in [0, %d)", ErrOutOfRange, position, len(labels))
	}
	d.position = position
	return d, nil
}

// Sides returns the total number of labels.
func (d SliceDie[T]) Sides() int { return len(d.labels) }

// Position returns the current zero-based position, always in [0, Sides()).
func (d SliceDie[T]) Position() int { return d.position }

// Value returns the label currently showing.
func (d SliceDie[T]) Value() T { return d.labels[d.position] }

// Labels returns the borrowed label slice. Callers must not modify it.
func (d SliceDie[T]) Labels() []T { return d.labels }

// Next returns a die pointing at the next label, wrapping to the first.
func (d SliceDie[T]) Next() SliceDie[T] {
	return SliceDie[T]{labels: d.labels, position: StepForward(d.position, len(d.labels))}
}

// Back returns a die pointing at the previous label, wrapping to the last.
func (d SliceDie[T]) Back() SliceDie[T] {
	return SliceDie[T]{labels: d.labels, position: StepBackward(d.position, len(d.labels))}
}

// Rotate returns a die rotated by amount positions, forward for positive
// amounts and backward for negative ones, wrapping in both directions.
//
// Postcondition: result Position() is in [0, Sides()); Rotate(0) == d.
func (d SliceDie[T]) Rotate(amount int) SliceDie[T] {
	return SliceDie[T]{labels: d.labels, position: Rotate(d.position, len(d.labels), amount)}
}

// NextMut advances the die to the next label in place.
func (d *SliceDie[T]) NextMut() {
	d.position = StepForward(d.position, len(d.labels))
}

// BackMut moves the die to the previous label in place.
func (d *SliceDie[T]) BackMut() {
	d.position = StepBackward(d.position, len(d.labels))
}

// RotateMut rotates the die by amount positions in place.
func (d *SliceDie[T]) RotateMut(amount int) {
	d.position = Rotate(d.position, len(d.labels), amount)
}
