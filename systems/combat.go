package systems

import (
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
)

// Punch toggles the attacker's hand on side. When the hand extends it is
// tested once against every other combatant's body and each one struck
// takes a hit. Retracting never strikes. Returns the struck combatants.
func Punch(w donburi.World, attacker *donburi.Entry, side components.Side) []*donburi.Entry {
	direction := side.Direction()

	hand := components.Melee.Get(attacker).Part(side)
	if hand.Toggle() != components.LimbExtended {
		return nil
	}
	hand.Sync(CombatantRect(attacker))

	var struck []*donburi.Entry
	tags.Player.Each(w, func(other *donburi.Entry) {
		if other.Entity() == attacker.Entity() {
			return
		}
		if hand.Rect.Overlaps(CombatantRect(other)) {
			ApplyHit(other, direction)
			struck = append(struck, other)
		}
	})
	return struck
}

// ApplyHit knocks the victim along direction, pops it up and deals punch
// damage. This is the only place health goes down.
func ApplyHit(victim *donburi.Entry, direction float64) {
	physics := components.Physics.Get(victim)
	physics.Velocity.X += direction * cfg.Combat.PunchKnockback
	physics.Velocity.Y -= cfg.Combat.PunchPopup

	hp := components.Health.Get(victim)
	hp.Current -= cfg.Combat.PunchDamage
	components.HealthBar.Get(victim).SetPercent(healthPercent(hp))
}

func healthPercent(hp *components.HealthData) int {
	if hp.Max <= 0 {
		return 0
	}
	return hp.Current * 100 / hp.Max
}
