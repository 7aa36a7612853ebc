package main

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Player != "Charizard" || cfg.Opponent != "Blastoise" {
		t.Errorf("matchup = %s vs %s", cfg.Player, cfg.Opponent)
	}
	if cfg.MaxRounds != 1000 {
		t.Errorf("MaxRounds = %d, want 1000", cfg.MaxRounds)
	}
	if cfg.WindowWidth != 640 || cfg.WindowHeight != 400 {
		t.Errorf("window = %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.Auto || cfg.Debug || cfg.Seed != 0 {
		t.Errorf("unexpected flags: %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CREATUREBATTLE_PLAYER", "Sparkitty")
	t.Setenv("CREATUREBATTLE_OPPONENT", "random")
	t.Setenv("CREATUREBATTLE_SEED", "1234")
	t.Setenv("CREATUREBATTLE_AUTO", "true")
	t.Setenv("CREATUREBATTLE_MAX_ROUNDS", "50")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Player != "Sparkitty" || cfg.OpponentName() != "" {
		t.Errorf("matchup = %s vs %q", cfg.Player, cfg.OpponentName())
	}
	if cfg.Seed != 1234 || !cfg.Auto || cfg.MaxRounds != 50 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("CREATUREBATTLE_MAX_ROUNDS", "0")
	t.Setenv("CREATUREBATTLE_WINDOW_WIDTH", "-1")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "MAX_ROUNDS") || !strings.Contains(err.Error(), "window size") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	t.Setenv("CREATUREBATTLE_SEED", "not-a-number")
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("err = %v", err)
	}
}

func TestResolveSeed(t *testing.T) {
	seed, err := Config{Seed: 7}.ResolveSeed()
	if err != nil || seed != 7 {
		t.Fatalf("ResolveSeed = %d, %v", seed, err)
	}

	a, err := Config{}.ResolveSeed()
	if err != nil {
		t.Fatalf("ResolveSeed: %v", err)
	}
	b, _ := Config{}.ResolveSeed()
	if a == b {
		t.Errorf("two random seeds collided: %d", a)
	}
}
