package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"strings"

	"creaturebattle/battle"
)

// newSession builds a battle between player and the configured opponent.
func newSession(cfg Config, player string, seed uint64, logger *log.Logger) (*battle.Session, error) {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	p, o, err := battle.NewMatchup(player, cfg.OpponentName(), rng)
	if err != nil {
		return nil, fmt.Errorf("set up matchup: %w", err)
	}

	opts := []battle.Option{battle.WithMaxRounds(cfg.MaxRounds)}
	if logger != nil {
		opts = append(opts, battle.WithLogger(logger))
	}
	s, err := battle.NewSession(p, o, rng.Uint64(), opts...)
	if err != nil {
		return nil, fmt.Errorf("start battle: %w", err)
	}
	return s, nil
}

// runAuto plays one unattended battle and writes the narration to w.
func runAuto(cfg Config, seed uint64, logger *log.Logger, w io.Writer) error {
	s, err := newSession(cfg, cfg.Player, seed, logger)
	if err != nil {
		return err
	}

	_, simErr := s.Simulate()
	if _, err := fmt.Fprintln(w, logPanelText(s, s.Log().Len())); err != nil {
		return err
	}
	if simErr != nil {
		return simErr
	}
	_, err = fmt.Fprintln(w, resultText(s.View()))
	return err
}

// logPanelText renders the HP header followed by the last n log lines.
func logPanelText(s *battle.Session, n int) string {
	p, o := s.Player(), s.Opponent()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s HP: %d/%d\n", p.Name(), p.Health(), p.MaxHealth())
	fmt.Fprintf(&sb, "%s HP: %d/%d", o.Name(), o.Health(), o.MaxHealth())

	for _, l := range s.Log().Tail(n) {
		sb.WriteString("\n")
		sb.WriteString(l)
	}
	return sb.String()
}

func resultText(v battle.View) string {
	switch v.State {
	case battle.PlayerWon:
		return fmt.Sprintf("%s wins after %d rounds!", v.Player.Name, v.Round)
	case battle.OpponentWon:
		return fmt.Sprintf("%s wins after %d rounds!", v.Opponent.Name, v.Round)
	}
	return ""
}
