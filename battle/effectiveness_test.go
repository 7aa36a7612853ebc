package battle_test

import (
	"testing"

	"creaturebattle/battle"
)

func TestEffectivenessChart(t *testing.T) {
	tests := []struct {
		attack, defend battle.Element
		want           battle.Multiplier
	}{
		{battle.Fire, battle.Fire, 0.5},
		{battle.Fire, battle.Water, 0.5},
		{battle.Fire, battle.Grass, 2.0},
		{battle.Fire, battle.Electric, 1.0},
		{battle.Water, battle.Fire, 2.0},
		{battle.Water, battle.Water, 0.5},
		{battle.Water, battle.Grass, 0.5},
		{battle.Grass, battle.Fire, 0.5},
		{battle.Grass, battle.Water, 2.0},
		{battle.Grass, battle.Grass, 0.5},
		{battle.Electric, battle.Water, 2.0},
		{battle.Electric, battle.Grass, 0.5},
		{battle.Electric, battle.Electric, 0.5},
		{battle.Electric, battle.Fire, 1.0},
	}

	for _, tt := range tests {
		if got := battle.Effectiveness(tt.attack, tt.defend); got != tt.want {
			t.Errorf("Effectiveness(%s, %s) = %v, want %v", tt.attack, tt.defend, got, tt.want)
		}
	}
}

func TestEffectivenessNormalIsNeutral(t *testing.T) {
	for _, e := range battle.Elements {
		if got := battle.Effectiveness(battle.Normal, e); got != battle.Neutral {
			t.Errorf("Effectiveness(normal, %s) = %v, want 1.0", e, got)
		}
		if got := battle.Effectiveness(e, battle.Normal); got != battle.Neutral {
			t.Errorf("Effectiveness(%s, normal) = %v, want 1.0", e, got)
		}
	}
	if got := battle.Effectiveness("ghost", battle.Fire); got != battle.Neutral {
		t.Errorf("Effectiveness(ghost, fire) = %v, want 1.0", got)
	}
}

func TestMultiplierApply(t *testing.T) {
	tests := []struct {
		m     battle.Multiplier
		power int
		want  int
	}{
		{0.5, 35, 17},
		{2.0, 40, 80},
		{1.0, 40, 40},
		{0.5, 1, 0},
		{2.0, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.m.Apply(tt.power); got != tt.want {
			t.Errorf("%v.Apply(%d) = %d, want %d", tt.m, tt.power, got, tt.want)
		}
	}
}

func TestMultiplierString(t *testing.T) {
	tests := map[battle.Multiplier]string{
		0.5:  "0.5",
		1.0:  "1.0",
		2.0:  "2.0",
		0.25: "0.25",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("Multiplier(%g).String() = %q, want %q", float64(m), got, want)
		}
	}
}

func TestMultiplierDescribe(t *testing.T) {
	if got := battle.Multiplier(2).Describe(); got != "It's super effective!" {
		t.Errorf("Describe(2) = %q", got)
	}
	if got := battle.Multiplier(0.5).Describe(); got != "It's not very effective..." {
		t.Errorf("Describe(0.5) = %q", got)
	}
	if got := battle.Neutral.Describe(); got != "" {
		t.Errorf("Describe(1) = %q, want empty", got)
	}
}
