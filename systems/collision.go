package systems

import (
	"sort"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/stage"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, ResolveTileCollisions)
}

// ResolveTileCollisions lands a falling combatant on the tiles under it.
//
// Only landing is resolved. A combatant moving sideways or upward into a
// tile passes through it; a full resolver would push out along the minimum
// translation vector on all four sides.
func ResolveTileCollisions(e *donburi.Entry) {
	physics := components.Physics.Get(e)
	syncObject(e)

	rect := CombatantRect(e)
	touching := overlappingTiles(e)
	if len(touching) == 0 {
		physics.OnGround = false
		return
	}

	for _, tile := range touching {
		// Falling, and the bottom edge crossed the tile top during this
		// frame rather than already sitting deeper inside it.
		if physics.Velocity.Y > 0 && rect.Bottom() <= tile.Rect.Top()+physics.Velocity.Y {
			physics.Position.Y = tile.Rect.Top() - rect.H
			physics.Velocity.Y = 0
			physics.OnGround = true
		}
	}

	syncObject(e)
}

// overlappingTiles returns the tiles touched by the combatant rect extended
// downward by the ground probe, in stage order. The resolv space narrows
// the candidates; the exact test is an AABB overlap.
func overlappingTiles(e *donburi.Entry) []stage.Tile {
	obj := components.Object.Get(e)
	probe := CombatantRect(e)
	probe.H += cfg.Physics.GroundProbe

	check := obj.Check(0, cfg.Physics.GroundProbe, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var tiles []stage.Tile
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.HasComponent(components.Tile) {
			continue
		}
		tile := components.Tile.Get(entry)
		if probe.Overlaps(tile.Rect) {
			tiles = append(tiles, *tile)
		}
	}

	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].Index < tiles[j].Index
	})
	return tiles
}
