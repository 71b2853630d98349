package systems

import (
	"testing"

	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestWithLevelActive(t *testing.T) {
	e := newFloorWorld(t, 620)
	calls := 0
	system := WithLevelActive(func(*ecs.ECS) { calls++ })

	system(e)
	assert.Equal(t, 1, calls)

	endLevel(e.World, 0)
	system(e)
	assert.Equal(t, 1, calls)
}

func TestLevelActiveWithoutLevel(t *testing.T) {
	w := donburi.NewWorld()
	assert.False(t, IsLevelActive(w))
	_, ok := Winner(w)
	assert.False(t, ok)
}

func TestUpdateLevelCountsFrames(t *testing.T) {
	e := newFloorWorld(t, 620)
	UpdateLevel(e)
	UpdateLevel(e)

	level, _ := levelData(e.World)
	assert.Equal(t, 2, level.Frame)

	endLevel(e.World, 1)
	UpdateLevel(e)
	assert.Equal(t, 2, level.Frame)
}

func TestEndLevelKeepsFirstLoser(t *testing.T) {
	e := newFloorWorld(t, 620)
	spawnAt(e, 0, 100, 100, factory.UnboundKeys())
	spawnAt(e, 1, 800, 100, factory.UnboundKeys())

	_, ok := Winner(e.World)
	assert.False(t, ok)

	endLevel(e.World, 0)
	endLevel(e.World, 1)

	name, ok := Winner(e.World)
	assert.True(t, ok)
	assert.Equal(t, "P2", name)
}
