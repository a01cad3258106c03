package dice

// Roller decides how far a value is rotated when it is rolled. The two
// stock implementations are NopRoller (never rotates) and RngRoller
// (uniform random rotation).
type Roller interface {
	// Amount returns a rotation amount in [0, sides).
	//
	// Precondition: sides >= 1.
	Amount(sides int) int
}

// NopRoller is a Roller that never rotates anything. Use it to express "no
// randomness" explicitly, e.g. in deterministic tests, instead of a fixed
// seed.
type NopRoller struct{}

// Amount always returns 0, so rolling with a NopRoller leaves every value
// on its current side.
func (NopRoller) Amount(int) int { return 0 }

// RngRoller rotates values by a uniformly drawn amount from a Source.
//
// An RngRoller is as safe for concurrent use as its Source: crypto sources
// may be shared freely, seeded sources must not be.
type RngRoller struct {
	src Source
}

// NewRngRoller creates a roller drawing from src.
//
// Precondition: src must be non-nil.
func NewRngRoller(src Source) RngRoller {
	if src == nil {
		panic("dice: NewRngRoller requires a non-nil Source")
	}
	return RngRoller{src: src}
}

// Amount draws a uniform rotation amount in [0, sides). A single draw can
// reach every side of a die with equal probability if the Source is
// uniform.
//
// Precondition: sides >= 1 (enforced by the Source).
func (r RngRoller) Amount(sides int) int {
	return r.src.Intn(sides)
}

// Roll returns die rotated by an amount drawn from r. The input is left
// untouched.
//
// Postcondition: the result is a valid side of the same die.
func Roll[T Die[T]](r Roller, die T) T {
	return die.Rotate(r.Amount(die.Sides()))
}

// RollMut rotates die in place by an amount drawn from r.
//
// Precondition: die must be non-nil.
func RollMut(r Roller, die MutDie) {
	die.RotateMut(r.Amount(die.Sides()))
}
