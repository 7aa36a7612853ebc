package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	seed, err := cfg.ResolveSeed()
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	var debug *log.Logger
	if cfg.Debug {
		debug = log.New(os.Stderr, "battle: ", log.LstdFlags)
		debug.Printf("seed %d", seed)
	}

	if cfg.Auto {
		if err := runAuto(cfg, seed, debug, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Creature Battle Simulator")

	game := NewGame(cfg, seed, debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
