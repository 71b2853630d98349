package systems

import (
	"testing"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/gamemath"
	"github.com/automoto/tilebrawl/input"
	"github.com/automoto/tilebrawl/stage"
	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Keys bound to the combatants in tests.
const (
	keyLeft input.Key = iota + 1
	keyRight
	keyJump
	keyPunchLeft
	keyPunchRight
)

func testBindings() [cfg.ActionCount]input.Key {
	keys := factory.UnboundKeys()
	keys[cfg.ActionMoveLeft] = keyLeft
	keys[cfg.ActionMoveRight] = keyRight
	keys[cfg.ActionJump] = keyJump
	keys[cfg.ActionPunchLeft] = keyPunchLeft
	keys[cfg.ActionPunchRight] = keyPunchRight
	return keys
}

// newFloorWorld builds a level whose only tile is a wide slab with its top
// edge at floorTop.
func newFloorWorld(t *testing.T, floorTop float64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	st, err := stage.New("test", stage.Grid{{0}}, 1280, 720)
	require.NoError(t, err)
	factory.CreateLevel(e, st)
	factory.CreateTile(e, stage.Tile{
		Index: 0,
		Rect:  gamemath.Rect{X: 0, Y: floorTop, W: 1280, H: 100},
	})
	return e
}

func spawnAt(e *ecs.ECS, index int, x, y float64, bindings [cfg.ActionCount]input.Key) *donburi.Entry {
	return factory.CreateCombatant(e, factory.CombatantConfig{
		Index:    index,
		Name:     []string{"P1", "P2", "P3"}[index],
		Color:    cfg.Red,
		Spawn:    components.Vector{X: x, Y: y},
		Bindings: bindings,
	})
}

// step runs one simulation frame for a single combatant without input.
func step(e *donburi.Entry) {
	Integrate(e)
	ResolveTileCollisions(e)
	CheckLiveness(e.World, e)
}

// settle drops a combatant until it lands, failing after limit frames.
func settle(t *testing.T, e *donburi.Entry, limit int) int {
	t.Helper()
	for frame := 1; frame <= limit; frame++ {
		step(e)
		if components.Physics.Get(e).OnGround {
			return frame
		}
	}
	t.Fatalf("combatant did not land within %d frames", limit)
	return 0
}
