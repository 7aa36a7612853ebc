package battle_test

import (
	"errors"
	"testing"

	"creaturebattle/battle"
)

func TestNewCombatantValidation(t *testing.T) {
	if _, err := battle.NewCombatant("Empty", battle.Fire, 100); !errors.Is(err, battle.ErrNoMoves) {
		t.Errorf("expected ErrNoMoves, got %v", err)
	}
	if _, err := battle.NewCombatant("Zero", battle.Fire, 0, battle.Flamethrower); !errors.Is(err, battle.ErrInvalidHealth) {
		t.Errorf("expected ErrInvalidHealth, got %v", err)
	}
	if _, err := battle.NewCombatant("Odd", "ghost", 10, battle.Tackle); !errors.Is(err, battle.ErrUnknownElement) {
		t.Errorf("expected ErrUnknownElement, got %v", err)
	}
	if _, err := battle.NewMove("Bad", battle.Fire, -1); !errors.Is(err, battle.ErrNegativePower) {
		t.Errorf("expected ErrNegativePower, got %v", err)
	}
}

func TestNewCombatantStartsAtFullHealth(t *testing.T) {
	c := battle.MustCombatant("Charizard", battle.Fire, 120, battle.Flamethrower)
	if c.Health() != 120 || c.MaxHealth() != 120 {
		t.Fatalf("health = %d/%d, want 120/120", c.Health(), c.MaxHealth())
	}
	if c.IsKnockedOut() {
		t.Fatalf("fresh combatant is knocked out")
	}
}

func TestApplyDamageClampsAtZero(t *testing.T) {
	for _, start := range []int{1, 17, 120} {
		for _, d := range []int{0, 1, 16, 17, 18, 119, 120, 121, 500} {
			c := battle.MustCombatant("C", battle.Fire, start, battle.Flamethrower)
			c.ApplyDamage(d)

			want := start - d
			if want < 0 {
				want = 0
			}
			if c.Health() != want {
				t.Errorf("start %d, damage %d: health = %d, want %d", start, d, c.Health(), want)
			}
			if c.IsKnockedOut() != (want == 0) {
				t.Errorf("start %d, damage %d: IsKnockedOut = %v", start, d, c.IsKnockedOut())
			}
		}
	}
}

func TestApplyDamageIgnoresNegative(t *testing.T) {
	c := battle.MustCombatant("C", battle.Water, 50, battle.Bubble)
	c.ApplyDamage(-10)
	if c.Health() != 50 {
		t.Fatalf("health = %d, want 50", c.Health())
	}
}

func TestKnockedOutStaysAtZero(t *testing.T) {
	c := battle.MustCombatant("C", battle.Water, 10, battle.Bubble)
	c.ApplyDamage(10)
	if !c.IsKnockedOut() {
		t.Fatalf("expected knocked out")
	}
	c.ApplyDamage(5)
	c.ApplyDamage(0)
	if c.Health() != 0 || !c.IsKnockedOut() {
		t.Fatalf("health = %d after knockout, want 0", c.Health())
	}
}

func TestMovesIsACopy(t *testing.T) {
	moves := []battle.Move{battle.Tackle, battle.Spark}
	c := battle.MustCombatant("Sparkitty", battle.Electric, 50, moves...)

	moves[0] = battle.Ember
	got := c.Moves()
	got[1] = battle.Bubble

	again := c.Moves()
	if again[0] != battle.Tackle || again[1] != battle.Spark {
		t.Fatalf("moves were mutated from outside: %+v", again)
	}
}
