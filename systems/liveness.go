package systems

import (
	"log"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateLiveness(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		CheckLiveness(ecs.World, e)
	})
}

// CheckLiveness respawns a combatant that has no health left or fell past
// the fall limit. It reports whether a respawn happened. Once a combatant's
// lives drop below zero the level is ended with that combatant as the loser.
func CheckLiveness(w donburi.World, e *donburi.Entry) bool {
	hp := components.Health.Get(e)
	physics := components.Physics.Get(e)
	if hp.Current > 0 && physics.Position.Y <= cfg.Physics.FallLimit {
		return false
	}

	Respawn(e)

	lives := components.Lives.Get(e)
	if lives.Lives < 0 {
		endLevel(w, components.Player.Get(e).Index)
	}
	return true
}

// Respawn puts the combatant back on its spawn point at rest with full
// health and costs one life.
func Respawn(e *donburi.Entry) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	physics.Position = player.Spawn
	physics.Velocity = components.Vector{}
	physics.OnGround = false

	hp := components.Health.Get(e)
	hp.Current = hp.Max
	components.HealthBar.Get(e).SetPercent(100)

	lives := components.Lives.Get(e)
	lives.Lives--

	melee := components.Melee.Get(e)
	melee.Left.State = components.LimbRetracted
	melee.Right.State = components.LimbRetracted
	melee.Sync(CombatantRect(e))
	syncObject(e)

	log.Printf("%s respawned, %d lives left", player.Name, lives.Lives)
}
