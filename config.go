package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// randomOpponent is the CREATUREBATTLE_OPPONENT value that picks any roster
// creature other than the player's.
const randomOpponent = "random"

// Config is read from CREATUREBATTLE_* environment variables.
type Config struct {
	Player       string `env:"CREATUREBATTLE_PLAYER"        envDefault:"Charizard"`
	Opponent     string `env:"CREATUREBATTLE_OPPONENT"      envDefault:"Blastoise"`
	Seed         uint64 `env:"CREATUREBATTLE_SEED"          envDefault:"0"`
	Auto         bool   `env:"CREATUREBATTLE_AUTO"          envDefault:"false"`
	MaxRounds    int    `env:"CREATUREBATTLE_MAX_ROUNDS"    envDefault:"1000"`
	WindowWidth  int    `env:"CREATUREBATTLE_WINDOW_WIDTH"  envDefault:"640"`
	WindowHeight int    `env:"CREATUREBATTLE_WINDOW_HEIGHT" envDefault:"400"`
	Debug        bool   `env:"CREATUREBATTLE_DEBUG"         envDefault:"false"`
}

// LoadConfig parses and validates the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Player) == "" {
		errs = append(errs, errors.New("CREATUREBATTLE_PLAYER must not be empty"))
	}
	if c.MaxRounds <= 0 {
		errs = append(errs, fmt.Errorf("CREATUREBATTLE_MAX_ROUNDS must be positive, got %d", c.MaxRounds))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// OpponentName is the roster name to fight, or "" for a random pick.
func (c Config) OpponentName() string {
	if strings.EqualFold(strings.TrimSpace(c.Opponent), randomOpponent) {
		return ""
	}
	return c.Opponent
}

// ResolveSeed returns the configured seed, or a fresh one from crypto/rand
// when the seed is zero.
func (c Config) ResolveSeed() (uint64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}

	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
