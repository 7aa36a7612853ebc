package battle

import (
	"math"
	"strconv"
)

// Multiplier scales a move's base power by type advantage.
type Multiplier float64

const Neutral Multiplier = 1.0

var typeChart = map[Element]map[Element]Multiplier{
	Fire:     {Fire: 0.5, Water: 0.5, Grass: 2.0, Electric: 1.0},
	Water:    {Fire: 2.0, Water: 0.5, Grass: 0.5, Electric: 1.0},
	Grass:    {Fire: 0.5, Water: 2.0, Grass: 0.5, Electric: 1.0},
	Electric: {Fire: 1.0, Water: 2.0, Grass: 0.5, Electric: 0.5},
}

// Effectiveness looks up the multiplier for a move of type attack hitting a
// creature of type defend. Pairs missing from the chart are neutral.
func Effectiveness(attack, defend Element) Multiplier {
	if row, ok := typeChart[attack]; ok {
		if m, ok := row[defend]; ok {
			return m
		}
	}
	return Neutral
}

// Apply returns floor(power * m).
func (m Multiplier) Apply(power int) int {
	if power <= 0 {
		return 0
	}
	return int(math.Floor(float64(power) * float64(m)))
}

// Describe returns the narration for a non-neutral hit.
func (m Multiplier) Describe() string {
	switch {
	case m > Neutral:
		return "It's super effective!"
	case m < Neutral:
		return "It's not very effective..."
	}
	return ""
}

// String always keeps a decimal point, so 2 prints as "2.0".
func (m Multiplier) String() string {
	f := float64(m)
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
