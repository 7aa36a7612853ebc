package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// logLines is how many narration lines fit in the log panel.
const logLines = 10

// battleScreen holds the ebitenui widgets of the battle screen. It only reads
// the session through View and drives it through the three player actions.
type battleScreen struct {
	game    *Game
	ui      *ebitenui.UI
	logText *widget.Text
	buttons []*widget.Button
}

func newBattleScreen(g *Game) *battleScreen {
	s := &battleScreen{game: g}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{50, 50, 50, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
			StretchHorizontal:  true,
		})),
	)
	root.AddChild(panel)

	s.logText = widget.NewText(
		widget.TextOpts.Text("", g.fontFace, color.White),
		widget.TextOpts.Position(widget.TextPositionStart, widget.TextPositionStart),
	)
	panel.AddChild(s.logText)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	panel.AddChild(row)

	for _, b := range []struct {
		label  string
		action func()
	}{
		{"Attack", s.attack},
		{"Defense", s.defend},
		{"Skill", s.skill},
	} {
		action := b.action
		button := widget.NewButton(
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(b.label, g.fontFace, &widget.ButtonTextColor{
				Idle:     color.White,
				Disabled: color.RGBA{120, 120, 120, 255},
			}),
			widget.ButtonOpts.TextPadding(widget.Insets{Left: 20, Right: 20, Top: 5, Bottom: 5}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				action()
			}),
		)
		s.buttons = append(s.buttons, button)
		row.AddChild(button)
	}

	s.ui = &ebitenui.UI{Container: root}
	return s
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{0x40, 0x40, 0x40, 0xff}),
		Hover:    image.NewNineSliceColor(color.RGBA{0x60, 0x60, 0x60, 0xff}),
		Pressed:  image.NewNineSliceColor(color.RGBA{0x20, 0x20, 0x20, 0xff}),
		Disabled: image.NewNineSliceColor(color.RGBA{0x30, 0x30, 0x30, 0xa0}),
	}
}

func (s *battleScreen) attack() {
	s.game.session.PlayerAttackRandom()
	s.refresh()
}

func (s *battleScreen) defend() {
	s.game.session.PlayerDefend()
	s.refresh()
}

func (s *battleScreen) skill() {
	s.game.session.PlayerUseSkill()
	s.refresh()
}

// refresh copies the session view into the widgets
func (s *battleScreen) refresh() {
	session := s.game.session
	s.logText.Label = logPanelText(session, logLines)
	for _, b := range s.buttons {
		b.GetWidget().Disabled = session.State().Over()
	}
}

// updateBattle handles battle state updates
func (g *Game) updateBattle() {
	g.screen.ui.Update()

	// keyboard shortcuts for the three buttons
	if !g.session.State().Over() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyA):
			g.screen.attack()
		case inpututil.IsKeyJustPressed(ebiten.KeyD):
			g.screen.defend()
		case inpututil.IsKeyJustPressed(ebiten.KeyS):
			g.screen.skill()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.gameState = StateMainMenu
	}
}

// drawBattle draws the battle screen
func (g *Game) drawBattle(screen *ebiten.Image) {
	screen.Fill(color.RGBA{200, 200, 200, 255})

	v := g.session.View()
	w := float32(g.cfg.WindowWidth)

	// opponent top right, player lower left
	g.drawCreature(screen, v.Opponent, w-140, 50)
	g.drawCreature(screen, v.Player, 50, 110)

	banner := resultText(v)
	if banner == "" {
		// type advantage of the latest hit
		banner = v.Effect
	}
	if g.notice != "" {
		banner = g.notice
	}
	if banner != "" {
		vector.DrawFilledRect(screen, 0, 8, w, 18, color.RGBA{0, 0, 0, 180}, true)
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, 10)
		op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 0, 255})
		text.Draw(screen, banner+" Press ESC for the menu.", g.fontFace, op)
	}

	g.screen.ui.Draw(screen)
}
