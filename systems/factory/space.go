package factory

import (
	"math"

	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the broadphase cell size in pixels.
const spaceCellSize = 32

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateSpaceFor sizes a space to cover w x h world pixels. resolv only
// allocates whole cells, so the size is rounded up to the next cell.
func CreateSpaceFor(ecs *ecs.ECS, w, h float64) *donburi.Entry {
	return CreateSpace(ecs, cellAligned(w), cellAligned(h), spaceCellSize, spaceCellSize)
}

func cellAligned(v float64) int {
	return int(math.Ceil(v/spaceCellSize)) * spaceCellSize
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
