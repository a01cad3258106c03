package dice

import "fmt"

// NumericDie is the simplest die: a value in [1, sides] with a fixed side
// count. The zero value is not a valid die; use a constructor.
//
// Invariant: 1 <= value <= sides for every constructed die, and every
// operation preserves it.
type NumericDie struct {
	value int
	sides int
}

// NewNumericDie creates a die showing its minimum face, 1.
//
// Postcondition: Value() == 1, or ErrOutOfRange if sides < 1.
func NewNumericDie(sides int) (NumericDie, error) {
	if sides < 1 {
		return NumericDie{}, fmt.Errorf("%w: die must have at least 1 side, got %d", ErrOutOfRange, sides)
	}
	return NumericDie{value: 1, sides: sides}, nil
}

// NumericDieFrom creates a die showing the given face value.
//
// Postcondition: Value() == value, or ErrOutOfRange if value is outside
// [1, sides] (or sides < 1).
func NumericDieFrom(sides, value int) (NumericDie, error) {
	d, err := NewNumericDie(sides)
	if err != nil {
		return NumericDie{}, err
	}
	if value < 1 || value > sides {
		return NumericDie{}, fmt.Errorf("%w: face %d not in [1, %d]", ErrOutOfRange, value, sides)
	}
	d.value = value
	return d, nil
}

// D4 returns a 4-sided die showing 1.
func D4() NumericDie { return NumericDie{value: 1, sides: 4} }

// D6 returns a 6-sided die showing 1.
func D6() NumericDie { return NumericDie{value: 1, sides: 6} }

// D8 returns an 8-sided die showing 1.
func D8() NumericDie { return NumericDie{value: 1, sides: 8} }

// D10 returns a 10-sided die showing 1.
func D10() NumericDie { return NumericDie{value: 1, sides: 10} }

// D12 returns a 12-sided die showing 1.
func D12() NumericDie { return NumericDie{value: 1, sides: 12} }

// D20 returns a 20-sided die showing 1.
func D20() NumericDie { return NumericDie{value: 1, sides: 20} }

// Sides returns the total number of sides.
func (d NumericDie) Sides() int { return d.sides }

// Value returns the face currently showing, always in [1, Sides()].
func (d NumericDie) Value() int { return d.value }

// String renders the die as e.g. "D6:4".
func (d NumericDie) String() string {
	return fmt.Sprintf("D%d:%d", d.sides, d.value)
}

// Next returns a die showing the next face, wrapping from Sides() to 1.
func (d NumericDie) Next() NumericDie {
	return NumericDie{value: StepForward(d.value-1, d.sides) + 1, sides: d.sides}
}

// Back returns a die showing the previous face, wrapping from 1 to Sides().
func (d NumericDie) Back() NumericDie {
	return NumericDie{value: StepBackward(d.value-1, d.sides) + 1, sides: d.sides}
}

// Rotate returns a die rotated by amount faces, forward for positive
// amounts and backward for negative ones, wrapping in both directions.
//
// Postcondition: result Value() is in [1, Sides()]; Rotate(0) == d.
func (d NumericDie) Rotate(amount int) NumericDie {
	return NumericDie{value: Rotate(d.value-1, d.sides, amount) + 1, sides: d.sides}
}

// NextMut advances the die to the next face in place.
func (d *NumericDie) NextMut() {
	d.value = StepForward(d.value-1, d.sides) + 1
}

// BackMut moves the die to the previous face in place.
func (d *NumericDie) BackMut() {
	d.value = StepBackward(d.value-1, d.sides) + 1
}

// RotateMut rotates the die by amount faces in place.
func (d *NumericDie) RotateMut(amount int) {
	d.value = Rotate(d.value-1, d.sides, amount) + 1
}
