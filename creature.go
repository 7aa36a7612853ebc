package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"creaturebattle/battle"
)

const spriteSize = 40

// elementColors gives each element its sprite color
var elementColors = map[battle.Element]color.RGBA{
	battle.Fire:     {255, 100, 0, 255},
	battle.Water:    {0, 100, 255, 255},
	battle.Grass:    {60, 180, 75, 255},
	battle.Electric: {255, 255, 0, 255},
	battle.Normal:   {200, 200, 200, 255},
}

func elementColor(e battle.Element) color.RGBA {
	if c, ok := elementColors[e]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// hpColor returns green, yellow or red depending on remaining health
func hpColor(ratio float64) color.RGBA {
	switch {
	case ratio < 0.2:
		return color.RGBA{255, 0, 0, 255}
	case ratio < 0.5:
		return color.RGBA{255, 255, 0, 255}
	}
	return color.RGBA{0, 255, 0, 255}
}

// drawCreature draws a creature's sprite with its name and HP bar above it
func (g *Game) drawCreature(screen *ebiten.Image, v battle.CombatantView, x, y float32) {
	vector.DrawFilledRect(screen, x, y, spriteSize, spriteSize, elementColor(v.Element), true)

	// HP bar
	barWidth := float32(spriteSize * 2)
	vector.DrawFilledRect(screen, x, y-15, barWidth, 5, color.RGBA{100, 100, 100, 255}, true)
	ratio := v.HealthRatio()
	vector.DrawFilledRect(screen, x, y-15, barWidth*float32(ratio), 5, hpColor(ratio), true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y-32))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, v.Name+" ("+v.Element.Title()+")", g.fontFace, op)
}
