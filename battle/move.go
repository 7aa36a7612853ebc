package battle

import "fmt"

// Move is an attack a creature can use. Moves are plain values and may be
// shared between combatants.
type Move struct {
	Name    string
	Element Element
	Power   int
}

func NewMove(name string, element Element, power int) (Move, error) {
	if power < 0 {
		return Move{}, fmt.Errorf("move %s: %w", name, ErrNegativePower)
	}
	if !element.Valid() {
		return Move{}, fmt.Errorf("move %s: %w: %q", name, ErrUnknownElement, element)
	}
	return Move{Name: name, Element: element, Power: power}, nil
}

// MustMove is NewMove for static data; it panics on error.
func MustMove(name string, element Element, power int) Move {
	m, err := NewMove(name, element, power)
	if err != nil {
		panic(err)
	}
	return m
}

// SpecialSkill is the move behind the Skill action.
var SpecialSkill = MustMove("Special Skill", Normal, 40)
