package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tomb/dice"
)

// TestRotate_Concrete verifies the documented 6-position scenarios.
func TestRotate_Concrete(t *testing.T) {
	tests := []struct {
		name            string
		current, amount int
		want            int
	}{
		{"forward", 0, 2, 2},
		{"backward", 2, -2, 0},
		{"forward wrap", 2, 3, 5},
		{"backward wrap", 0, -3, 3},
		{"huge forward", 0, 600, 0},
		{"huge backward", 4, -600, 4},
		{"full turn backward", 3, -6, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dice.Rotate(tt.current, 6, tt.amount))
		})
	}
}

// TestRotate_SingleSide verifies size == 1 is legal and always resolves to 0.
func TestRotate_SingleSide(t *testing.T) {
	assert.Equal(t, 0, dice.Rotate(0, 1, 0))
	assert.Equal(t, 0, dice.Rotate(0, 1, 12345))
	assert.Equal(t, 0, dice.Rotate(0, 1, -12345))
	assert.Equal(t, 0, dice.StepForward(0, 1))
	assert.Equal(t, 0, dice.StepBackward(0, 1))
}

// TestRotate_Closure_Property verifies Rotate always lands in [0, size) for
// arbitrary valid inputs and unrestricted amounts.
func TestRotate_Closure_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 500).Draw(rt, "size")
		current := rapid.IntRange(0, size-1).Draw(rt, "current")
		amount := rapid.Int().Draw(rt, "amount")

		next := dice.Rotate(current, size, amount)
		assert.GreaterOrEqual(rt, next, 0, "closure: result must be >= 0")
		assert.Less(rt, next, size, "closure: result must be < size")
	})
}

// TestRotate_Identity_Property verifies Rotate(c, s, 0) == c.
func TestRotate_Identity_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 500).Draw(rt, "size")
		current := rapid.IntRange(0, size-1).Draw(rt, "current")

		assert.Equal(rt, current, dice.Rotate(current, size, 0),
			"identity: rotating by 0 must not move")
	})
}

// TestRotate_Inverse_Property verifies rotating by k then -k is a no-op.
func TestRotate_Inverse_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 500).Draw(rt, "size")
		current := rapid.IntRange(0, size-1).Draw(rt, "current")
		k := rapid.IntRange(-1_000_000, 1_000_000).Draw(rt, "k")

		assert.Equal(rt, current, dice.Rotate(dice.Rotate(current, size, k), size, -k),
			"inverse: rotate(rotate(c, k), -k) must return to c")
	})
}

// TestRotate_Periodicity_Property verifies rotating a full turn in either
// direction returns to the same position.
func TestRotate_Periodicity_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 500).Draw(rt, "size")
		current := rapid.IntRange(0, size-1).Draw(rt, "current")

		assert.Equal(rt, current, dice.Rotate(current, size, size))
		assert.Equal(rt, current, dice.Rotate(current, size, -size))
	})
}

// TestRotate_SingleStep_Property verifies rotate by ±1 matches the step
// functions.
func TestRotate_SingleStep_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 500).Draw(rt, "size")
		current := rapid.IntRange(0, size-1).Draw(rt, "current")

		assert.Equal(rt, dice.StepForward(current, size), dice.Rotate(current, size, 1))
		assert.Equal(rt, dice.StepBackward(current, size), dice.Rotate(current, size, -1))
	})
}

// TestRotate_LargeMagnitude_Property verifies rotate(c, amount) equals
// rotate(c, amount mod size) for any amount.
func TestRotate_LargeMagnitude_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 500).Draw(rt, "size")
		current := rapid.IntRange(0, size-1).Draw(rt, "current")
		amount := rapid.Int().Draw(rt, "amount")

		assert.Equal(rt, dice.Rotate(current, size, amount%size), dice.Rotate(current, size, amount),
			"large-magnitude: reduction modulo size must not change the result")
	})
}

// TestRotate_PanicsOnBadInput verifies the engine treats precondition
// violations as faults, not recoverable errors.
func TestRotate_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { dice.Rotate(0, 0, 1) }, "size 0 must panic")
	assert.Panics(t, func() { dice.Rotate(-1, 6, 1) }, "negative current must panic")
	assert.Panics(t, func() { dice.Rotate(6, 6, 1) }, "current == size must panic")
	assert.Panics(t, func() { dice.StepForward(3, 3) })
	assert.Panics(t, func() { dice.StepBackward(-1, 3) })
}
