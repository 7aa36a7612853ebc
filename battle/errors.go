package battle

import "errors"

var (
	ErrNoMoves         = errors.New("combatant has no moves")
	ErrInvalidHealth   = errors.New("max health must be positive")
	ErrNegativePower   = errors.New("move power must not be negative")
	ErrUnknownElement  = errors.New("unknown element")
	ErrUnknownCreature = errors.New("unknown creature")
	ErrInvalidSession  = errors.New("invalid session")

	// ErrStalemate is returned by Simulate when the round cap is reached
	// before either side is knocked out.
	ErrStalemate = errors.New("battle did not finish")
)
