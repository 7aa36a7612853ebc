package battle

import "fmt"

// Attack is the outcome of one resolved move.
type Attack struct {
	Attacker      string
	Defender      string
	Move          Move
	Damage        int
	Effectiveness Multiplier
}

// ResolveAttack hits defender with move and reports the damage and
// multiplier used. Damage is computed before clamping, so it can exceed the
// health the defender had left.
func ResolveAttack(attacker *Combatant, move Move, defender *Combatant) Attack {
	eff := Effectiveness(move.Element, defender.Element())
	dmg := eff.Apply(move.Power)
	defender.ApplyDamage(dmg)

	return Attack{
		Attacker:      attacker.Name(),
		Defender:      defender.Name(),
		Move:          move,
		Damage:        dmg,
		Effectiveness: eff,
	}
}

// Narrate renders the log line for a resolved attack.
func (a Attack) Narrate() string {
	return fmt.Sprintf("%s using %s, dealing %d damage to %s, Effectiveness: %s",
		a.Attacker, a.Move.Name, a.Damage, a.Defender, a.Effectiveness)
}
