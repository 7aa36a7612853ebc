package battle

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

var (
	Flamethrower = MustMove("Flamethrower", Fire, 35)
	HydroPump    = MustMove("Hydro Pump", Water, 40)
	Tackle       = MustMove("Tackle", Normal, 40)
	Spark        = MustMove("Spark", Electric, 50)
	Ember        = MustMove("Ember", Fire, 50)
	Bubble       = MustMove("Bubble", Water, 50)
)

// species is the static template a combatant is built from.
type species struct {
	name      string
	element   Element
	maxHealth int
	moves     []Move
}

var roster = []species{
	{name: "Charizard", element: Fire, maxHealth: 120, moves: []Move{Flamethrower}},
	{name: "Blastoise", element: Water, maxHealth: 130, moves: []Move{HydroPump}},
	{name: "Sparkitty", element: Electric, maxHealth: 50, moves: []Move{Tackle, Spark}},
	{name: "Flamepup", element: Fire, maxHealth: 45, moves: []Move{Tackle, Ember}},
	{name: "Bubblefrog", element: Water, maxHealth: 55, moves: []Move{Tackle, Bubble}},
}

// CreatureNames lists the roster in alphabetical order.
func CreatureNames() []string {
	names := make([]string, 0, len(roster))
	for _, sp := range roster {
		names = append(names, sp.name)
	}
	sort.Strings(names)
	return names
}

// NewCreature builds a fresh, full-health combatant from the roster. Names
// match case-insensitively.
func NewCreature(name string) (*Combatant, error) {
	for _, sp := range roster {
		if strings.EqualFold(sp.name, strings.TrimSpace(name)) {
			return NewCombatant(sp.name, sp.element, sp.maxHealth, sp.moves...)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCreature, name)
}

// RandomOpponent picks a roster creature other than player.
func RandomOpponent(player string, rng *rand.Rand) (*Combatant, error) {
	var candidates []string
	for _, sp := range roster {
		if !strings.EqualFold(sp.name, player) {
			candidates = append(candidates, sp.name)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no opponent available for %q", ErrUnknownCreature, player)
	}
	return NewCreature(candidates[rng.IntN(len(candidates))])
}

// NewMatchup builds the player's creature and its opponent. An empty
// opponent name, or one naming the player's own creature, picks one at random.
func NewMatchup(player, opponent string, rng *rand.Rand) (*Combatant, *Combatant, error) {
	p, err := NewCreature(player)
	if err != nil {
		return nil, nil, fmt.Errorf("player: %w", err)
	}

	var o *Combatant
	if strings.TrimSpace(opponent) == "" || strings.EqualFold(strings.TrimSpace(opponent), p.Name()) {
		o, err = RandomOpponent(p.Name(), rng)
	} else {
		o, err = NewCreature(opponent)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opponent: %w", err)
	}
	return p, o, nil
}
