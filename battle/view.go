package battle

// CombatantView is the read-only face of a combatant shown to the player.
type CombatantView struct {
	Name      string
	Element   Element
	Health    int
	MaxHealth int
}

// HealthRatio is current health as a fraction of max health.
func (v CombatantView) HealthRatio() float64 {
	if v.MaxHealth <= 0 {
		return 0
	}
	return float64(v.Health) / float64(v.MaxHealth)
}

// View is a snapshot of a session for rendering.
type View struct {
	Player   CombatantView
	Opponent CombatantView
	State    State
	Round    int
	Log      string
	Lines    []string
	// Effect describes the type advantage of the latest hit, if any.
	Effect   string
}

func viewOf(c *Combatant) CombatantView {
	return CombatantView{
		Name:      c.Name(),
		Element:   c.Element(),
		Health:    c.Health(),
		MaxHealth: c.MaxHealth(),
	}
}

func (s *Session) View() View {
	return View{
		Player:   viewOf(s.player),
		Opponent: viewOf(s.opponent),
		State:    s.state,
		Round:    s.rounds,
		Log:      s.log.Render(),
		Lines:    s.log.Lines(),
		Effect:   s.effect,
	}
}
