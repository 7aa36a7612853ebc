package battle

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Element is the elemental type of a creature or a move.
type Element string

const (
	Fire     Element = "fire"
	Water    Element = "water"
	Grass    Element = "grass"
	Electric Element = "electric"
	Normal   Element = "normal"
)

var Elements = []Element{Fire, Water, Grass, Electric, Normal}

var titleCaser = cases.Title(language.English)

func (e Element) Valid() bool {
	switch e {
	case Fire, Water, Grass, Electric, Normal:
		return true
	}
	return false
}

// Title returns the display form of the element, e.g. "Fire".
func (e Element) Title() string {
	return titleCaser.String(string(e))
}

func (e Element) String() string {
	return string(e)
}
