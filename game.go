package main

import (
	"image/color"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"creaturebattle/battle"
)

// Game state constants
const (
	StateMainMenu = iota
	StateCreatureMenu
	StateBattle
)

// Game is the main game struct
type Game struct {
	cfg       Config
	rng       *rand.Rand
	logger    *log.Logger
	gameState int
	fontFace  text.Face

	menuOptions    []string
	selectedOption int

	creatureNames    []string
	selectedCreature int

	session *battle.Session
	screen  *battleScreen
	notice  string
}

// NewGame creates a new game instance
func NewGame(cfg Config, seed uint64, logger *log.Logger) *Game {
	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewPCG(seed, ^seed)),
		logger:        logger,
		gameState:     StateMainMenu,
		fontFace:      text.NewGoXFace(basicfont.Face7x13),
		menuOptions:   []string{"New Battle", "Auto Battle", "Exit"},
		creatureNames: battle.CreatureNames(),
	}
	g.selectedCreature = creatureIndex(g.creatureNames, cfg.Player)
	g.screen = newBattleScreen(g)
	return g
}

// creatureIndex finds name in names ignoring case, defaulting to the first entry
func creatureIndex(names []string, name string) int {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return i
		}
	}
	return 0
}

// startBattle sets up a fresh session for player and switches to the battle screen
func (g *Game) startBattle(player string, auto bool) error {
	s, err := newSession(g.cfg, player, g.rng.Uint64(), g.logger)
	if err != nil {
		return err
	}
	g.session = s
	g.notice = ""

	if auto {
		if _, err := s.Simulate(); err != nil {
			log.Printf("auto battle: %v", err)
			g.notice = "The battle was called off."
		}
	}

	g.screen.refresh()
	g.gameState = StateBattle
	return nil
}

// Update updates the game state
func (g *Game) Update() error {
	switch g.gameState {
	case StateMainMenu:
		return g.updateMainMenu()
	case StateCreatureMenu:
		return g.updateCreatureMenu()
	case StateBattle:
		g.updateBattle()
	}
	return nil
}

// Draw draws the game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 46, 255})

	switch g.gameState {
	case StateMainMenu:
		g.drawMainMenu(screen)
	case StateCreatureMenu:
		g.drawCreatureMenu(screen)
	case StateBattle:
		g.drawBattle(screen)
	}
}

// Layout implements ebiten.Game's Layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
