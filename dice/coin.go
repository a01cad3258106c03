package dice

// Facing is the side a Coin shows. A bool would work, but loses the
// meaning of true vs false at call sites.
type Facing int

const (
	// Heads is the default facing.
	Heads Facing = iota
	// Tails is the other one.
	Tails
)

// String returns "heads" or "tails".
func (f Facing) String() string {
	if f == Tails {
		return "tails"
	}
	return "heads"
}

// Coin is a 2-sided value. The zero value is a valid coin showing Heads.
type Coin struct {
	facing Facing
}

// NewCoin creates a coin showing the given facing.
func NewCoin(f Facing) Coin { return Coin{facing: f} }

// HeadsUp creates a coin showing Heads.
func HeadsUp() Coin { return Coin{facing: Heads} }

// TailsUp creates a coin showing Tails.
func TailsUp() Coin { return Coin{facing: Tails} }

// Facing returns the side currently showing.
func (c Coin) Facing() Facing { return c.facing }

// IsHeads reports whether the coin shows Heads.
func (c Coin) IsHeads() bool { return c.facing == Heads }

// IsTails reports whether the coin shows Tails.
func (c Coin) IsTails() bool { return c.facing == Tails }

// Sides returns 2.
func (c Coin) Sides() int { return 2 }

// Swap returns the coin turned to its opposite side.
func (c Coin) Swap() Coin { return c.Next() }

// SwapMut turns the coin to its opposite side in place and returns the new
// facing.
func (c *Coin) SwapMut() Facing {
	c.NextMut()
	return c.facing
}

// Next returns the coin turned to its opposite side. With two sides,
// stepping forward and backward are the same move.
func (c Coin) Next() Coin {
	return Coin{facing: Facing(StepForward(int(c.facing), 2))}
}

// Back returns the coin turned to its opposite side.
func (c Coin) Back() Coin {
	return Coin{facing: Facing(StepBackward(int(c.facing), 2))}
}

// Rotate returns the coin rotated by amount: even amounts leave it
// unchanged, odd amounts flip it.
func (c Coin) Rotate(amount int) Coin {
	return Coin{facing: Facing(Rotate(int(c.facing), 2, amount))}
}

// NextMut flips the coin in place.
func (c *Coin) NextMut() {
	c.facing = Facing(StepForward(int(c.facing), 2))
}

// BackMut flips the coin in place.
func (c *Coin) BackMut() {
	c.facing = Facing(StepBackward(int(c.facing), 2))
}

// RotateMut rotates the coin in place; odd amounts flip it.
func (c *Coin) RotateMut(amount int) {
	c.facing = Facing(Rotate(int(c.facing), 2, amount))
}
