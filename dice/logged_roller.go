package dice

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoggedRoller decorates a Roller so every draw is logged at debug level
// with a unique draw ID, the side count, and the chosen amount. It
// implements Roller itself, so it composes with Roll, RollMut, and Eval.
type LoggedRoller struct {
	next   Roller
	logger *zap.Logger
}

// NewLoggedRoller creates a LoggedRoller that draws from next and logs each
// draw to logger.
//
// Precondition: next and logger must be non-nil.
func NewLoggedRoller(next Roller, logger *zap.Logger) *LoggedRoller {
	if next == nil || logger == nil {
		panic("dice: NewLoggedRoller requires a non-nil Roller and logger")
	}
	return &LoggedRoller{next: next, logger: logger}
}

// Amount draws from the wrapped Roller and logs the result.
//
// Postcondition: the returned amount is exactly what the wrapped Roller
// produced.
func (l *LoggedRoller) Amount(sides int) int {
	amount := l.next.Amount(sides)
	l.logger.Debug("dice draw",
		zap.String("draw_id", uuid.NewString()),
		zap.Int("sides", sides),
		zap.Int("amount", amount),
	)
	return amount
}
