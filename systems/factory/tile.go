package factory

import (
	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/stage"
	"github.com/automoto/tilebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile spawns a static solid tile and registers it with the space.
func CreateTile(ecs *ecs.ECS, tile stage.Tile) *donburi.Entry {
	entry := archetypes.Tile.Spawn(ecs)

	r := tile.Rect
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.Data = entry // Link for O(1) lookup

	components.Tile.SetValue(entry, tile)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return entry
}
