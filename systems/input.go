package systems

import (
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/input"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateInput creates the input system. poll is called once per frame
// and the same snapshot is handed to every combatant.
func NewUpdateInput(poll func() input.Snapshot) ecs.System {
	return func(e *ecs.ECS) {
		snap := poll()
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			ApplyInput(e.World, entry, snap)
		})
	}
}

// ApplyInput runs one combatant's movement, jump and punch actions.
// Movement and jump read held keys; punches toggle on the press edge.
func ApplyInput(w donburi.World, e *donburi.Entry, snap input.Snapshot) {
	in := components.PlayerInput.Get(e)
	in.Capture(snap)

	physics := components.Physics.Get(e)
	if in.Action(cfg.ActionMoveLeft).Pressed {
		move(physics, cfg.DirectionLeft)
	}
	if in.Action(cfg.ActionMoveRight).Pressed {
		move(physics, cfg.DirectionRight)
	}
	if physics.OnGround && in.Action(cfg.ActionJump).Pressed {
		jump(physics)
	}
	if in.Action(cfg.ActionPunchLeft).JustPressed {
		Punch(w, e, components.SideLeft)
	}
	if in.Action(cfg.ActionPunchRight).JustPressed {
		Punch(w, e, components.SideRight)
	}
}

// move accelerates a grounded combatant. Airborne input is ignored.
func move(physics *components.PhysicsData, direction float64) {
	if !physics.OnGround {
		return
	}
	physics.Velocity.X += direction * cfg.Player.Speed
}

func jump(physics *components.PhysicsData) {
	physics.Velocity.Y = -cfg.Player.JumpSpeed
	physics.OnGround = false
}
