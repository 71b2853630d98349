package systems

import (
	"github.com/automoto/tilebrawl/input"
	"github.com/yohamta/donburi/ecs"
)

// AddSimulationSystems registers one frame of simulation in order: every
// combatant's input first, then physics, tile collision and liveness for
// all of them.
func AddSimulationSystems(e *ecs.ECS, poll func() input.Snapshot) {
	e.AddSystem(UpdateLevel)
	e.AddSystem(WithLevelActive(NewUpdateInput(poll)))
	e.AddSystem(WithLevelActive(UpdatePhysics))
	e.AddSystem(WithLevelActive(UpdateCollisions))
	e.AddSystem(WithLevelActive(UpdateLiveness))
}
