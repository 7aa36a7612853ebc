package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// updateMainMenu handles main menu state updates
func (g *Game) updateMainMenu() error {
	// Handle menu navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.selectedOption = (g.selectedOption - 1 + len(g.menuOptions)) % len(g.menuOptions)
	} else if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.selectedOption = (g.selectedOption + 1) % len(g.menuOptions)
	}

	// Handle selection
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch g.selectedOption {
		case 0: // New Battle
			g.gameState = StateCreatureMenu
		case 1: // Auto Battle
			if err := g.startBattle(g.cfg.Player, true); err != nil {
				log.Printf("start auto battle: %v", err)
				g.notice = err.Error()
			}
		case 2: // Exit
			return ebiten.Termination
		}
	}
	return nil
}

// drawMainMenu draws the main menu
func (g *Game) drawMainMenu(screen *ebiten.Image) {
	w, h := g.cfg.WindowWidth, g.cfg.WindowHeight

	// Draw title
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Translate(float64(w/2-80), float64(h/4))
	titleOp.ColorScale.ScaleWithColor(color.RGBA{255, 255, 255, 255})
	text.Draw(screen, "Creature Battle Simulator", g.fontFace, titleOp)

	// Draw menu options
	for i, option := range g.menuOptions {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(w/2-30), float64(h/2+i*20))

		// Highlight selected option
		if i == g.selectedOption {
			op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 0, 255}) // Yellow for selected

			// Draw selector arrow
			selectorOp := &text.DrawOptions{}
			selectorOp.GeoM.Translate(float64(w/2-45), float64(h/2+i*20))
			selectorOp.ColorScale.ScaleWithColor(color.RGBA{255, 255, 0, 255})
			text.Draw(screen, ">", g.fontFace, selectorOp)
		} else {
			op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 255, 255}) // White for unselected
		}

		text.Draw(screen, option, g.fontFace, op)
	}

	// Last error, if any
	if g.notice != "" {
		noticeOp := &text.DrawOptions{}
		noticeOp.GeoM.Translate(10, float64(h-45))
		noticeOp.ColorScale.ScaleWithColor(color.RGBA{255, 120, 120, 255})
		text.Draw(screen, g.notice, g.fontFace, noticeOp)
	}

	// Draw instructions
	instructionsOp := &text.DrawOptions{}
	instructionsOp.GeoM.Translate(10, float64(h-25))
	instructionsOp.ColorScale.ScaleWithColor(color.RGBA{200, 200, 200, 255})
	text.Draw(screen, "Arrow keys to navigate, Space/Enter to select", g.fontFace, instructionsOp)
}
