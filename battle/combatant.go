package battle

import "fmt"

// Combatant is a creature taking part in a battle.
type Combatant struct {
	name      string
	element   Element
	maxHealth int
	health    int
	moves     []Move
}

// NewCombatant creates a combatant at full health.
func NewCombatant(name string, element Element, maxHealth int, moves ...Move) (*Combatant, error) {
	if maxHealth <= 0 {
		return nil, fmt.Errorf("combatant %s: %w (got %d)", name, ErrInvalidHealth, maxHealth)
	}
	if len(moves) == 0 {
		return nil, fmt.Errorf("combatant %s: %w", name, ErrNoMoves)
	}
	if !element.Valid() {
		return nil, fmt.Errorf("combatant %s: %w: %q", name, ErrUnknownElement, element)
	}

	return &Combatant{
		name:      name,
		element:   element,
		maxHealth: maxHealth,
		health:    maxHealth,
		moves:     append([]Move(nil), moves...),
	}, nil
}

// MustCombatant is NewCombatant for static data; it panics on error.
func MustCombatant(name string, element Element, maxHealth int, moves ...Move) *Combatant {
	c, err := NewCombatant(name, element, maxHealth, moves...)
	if err != nil {
		panic(err)
	}
	return c
}

// ApplyDamage lowers health by amount, never below zero.
func (c *Combatant) ApplyDamage(amount int) {
	if amount <= 0 {
		return
	}
	c.health -= amount
	if c.health < 0 {
		c.health = 0
	}
}

func (c *Combatant) IsKnockedOut() bool {
	return c.health == 0
}

func (c *Combatant) Name() string     { return c.name }
func (c *Combatant) Element() Element { return c.element }
func (c *Combatant) Health() int      { return c.health }
func (c *Combatant) MaxHealth() int   { return c.maxHealth }

// Moves returns a copy of the move list.
func (c *Combatant) Moves() []Move {
	return append([]Move(nil), c.moves...)
}

func (c *Combatant) String() string {
	return fmt.Sprintf("%s (%s) %d/%d", c.name, c.element, c.health, c.maxHealth)
}
