package systems

import (
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/gamemath"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, Integrate)
}

// Integrate applies gravity, friction and the horizontal clamp, then moves
// the combatant by its velocity and carries the hands along. Order matters.
func Integrate(e *donburi.Entry) {
	physics := components.Physics.Get(e)

	// Ground state gates gravity; maxVelocity.Y is never enforced.
	if !physics.OnGround {
		physics.Velocity.Y += cfg.Physics.Gravity
	}

	if !physics.OnGround {
		physics.Velocity.X = gamemath.ApplyFriction(physics.Velocity.X, cfg.Physics.FrictionAir)
	} else if physics.Velocity.X != 0 {
		physics.Velocity.X = gamemath.ApplyFriction(physics.Velocity.X, cfg.Physics.FrictionFloor)
	}

	physics.Velocity.X = gamemath.ClampSpeed(physics.Velocity.X, physics.MaxVelocity.X)

	physics.Position = physics.Position.Add(physics.Velocity)

	components.Melee.Get(e).Sync(CombatantRect(e))
}
