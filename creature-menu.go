package main

import (
	"image/color"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"creaturebattle/battle"
)

// updateCreatureMenu lets the player pick which roster creature to send out
func (g *Game) updateCreatureMenu() error {
	// Handle menu navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.selectedCreature--
		if g.selectedCreature < 0 {
			g.selectedCreature = len(g.creatureNames) - 1
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.selectedCreature = (g.selectedCreature + 1) % len(g.creatureNames)
	}

	// Handle selection
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := g.startBattle(g.creatureNames[g.selectedCreature], false); err != nil {
			log.Printf("start battle: %v", err)
			g.notice = err.Error()
			g.gameState = StateMainMenu
		}
	}

	// Return to main menu
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.gameState = StateMainMenu
	}
	return nil
}

// drawCreatureMenu draws the roster list with the highlighted creature's details
func (g *Game) drawCreatureMenu(screen *ebiten.Image) {
	w, h := g.cfg.WindowWidth, g.cfg.WindowHeight

	// Draw menu background
	vector.DrawFilledRect(screen, 10, 10, float32(w-20), float32(h-20), color.RGBA{50, 50, 100, 240}, true)

	// Draw title
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Translate(20, 30)
	titleOp.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, "Choose your creature", g.fontFace, titleOp)

	// Draw creature list
	for i, name := range g.creatureNames {
		op := &text.DrawOptions{}
		op.GeoM.Translate(30, float64(60+i*20))

		// Highlight selected creature
		if i == g.selectedCreature {
			op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 0, 255}) // Yellow for selected

			// Draw selector arrow
			selectorOp := &text.DrawOptions{}
			selectorOp.GeoM.Translate(20, float64(60+i*20))
			selectorOp.ColorScale.ScaleWithColor(color.RGBA{255, 255, 0, 255})
			text.Draw(screen, ">", g.fontFace, selectorOp)
		} else {
			op.ColorScale.ScaleWithColor(color.White) // White for unselected
		}
		text.Draw(screen, name, g.fontFace, op)
	}

	// Draw details of the highlighted creature
	c, err := battle.NewCreature(g.creatureNames[g.selectedCreature])
	if err != nil {
		return
	}

	detailX := float64(w / 2)
	lines := []string{
		c.Name() + " (" + c.Element().Title() + ")",
		"HP: " + strconv.Itoa(c.MaxHealth()),
		"Moves:",
	}
	for _, m := range c.Moves() {
		lines = append(lines, "- "+m.Name+" ("+m.Element.Title()+") Power: "+strconv.Itoa(m.Power))
	}
	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(detailX, float64(60+i*18))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, l, g.fontFace, op)
	}

	// Draw instructions
	instructionsOp := &text.DrawOptions{}
	instructionsOp.GeoM.Translate(20, float64(h-30))
	instructionsOp.ColorScale.ScaleWithColor(color.RGBA{200, 200, 200, 255})
	text.Draw(screen, "Arrow keys to navigate, Space to battle, ESC to go back", g.fontFace, instructionsOp)
}
