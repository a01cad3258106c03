package dice

import "fmt"

// StepForward returns the index one side forward of current, wrapping from
// the last side back to 0.
//
// Precondition: size >= 1 and 0 <= current < size; violation panics.
// Postcondition: return value is in [0, size).
func StepForward(current, size int) int {
	checkIndex(current, size)
	next := current + 1
	if next == size {
		return 0
	}
	return next
}

// StepBackward returns the index one side backward of current, wrapping
// from 0 to the last side.
//
// Precondition: size >= 1 and 0 <= current < size; violation panics.
// Postcondition: return value is in [0, size).
func StepBackward(current, size int) int {
	checkIndex(current, size)
	if current == 0 {
		return size - 1
	}
	return current - 1
}

// Rotate returns the index amount sides away from current, in true
// mathematical modulo arithmetic: negative amounts rotate backward and the
// result always lands in [0, size), regardless of |amount|.
//
// The computation is O(1); amount is reduced modulo size before being
// applied, so huge magnitudes cost the same as small ones.
//
// Precondition: size >= 1 and 0 <= current < size; violation panics.
// Postcondition: return value is in [0, size); Rotate(c, s, 0) == c.
func Rotate(current, size, amount int) int {
	checkIndex(current, size)
	// amount%size is in (-size, size), so the sum stays well within int
	// range before the final reduction.
	return (current + amount%size + size) % size
}

// checkIndex enforces the engine preconditions. An out-of-range current is
// a bug in the caller, not a recoverable condition.
func checkIndex(current, size int) {
	if size < 1 {
		panic(fmt.Sprintf("dice: size must be >= 1, got %d", size))
	}
	if current < 0 || current >= size {
		panic(fmt.Sprintf("dice: current %d out of range [0, %d)", current, size))
	}
}
