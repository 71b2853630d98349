package archetypes

import (
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Combatant = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Health,
		components.HealthBar,
		components.Lives,
		components.Melee,
		components.PlayerInput,
	)
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
