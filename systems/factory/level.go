package factory

import (
	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/stage"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level singleton, its collision space and one
// entity per solid tile of st.
func CreateLevel(ecs *ecs.ECS, st *stage.Stage) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Stage:  st,
		Active: true,
		Loser:  -1,
	})

	CreateSpaceFor(ecs, st.Width, st.Height)
	for _, tile := range st.Tiles() {
		CreateTile(ecs, tile)
	}

	return level
}
