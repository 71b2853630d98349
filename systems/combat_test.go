package systems

import (
	"testing"

	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRightPunchHitsOpponent(t *testing.T) {
	e := newFloorWorld(t, 620)
	a := spawnAt(e, 0, 100, 520, factory.UnboundKeys())
	b := spawnAt(e, 1, 180, 520, factory.UnboundKeys())

	struck := Punch(e.World, a, components.SideRight)

	require.Len(t, struck, 1)
	assert.Equal(t, b.Entity(), struck[0].Entity())
	assert.Equal(t, 90, components.Health.Get(b).Current)
	physics := components.Physics.Get(b)
	assert.Equal(t, 40.0, physics.Velocity.X)
	assert.Equal(t, -10.0, physics.Velocity.Y)

	gauge := components.HealthBar.Get(b)
	assert.Equal(t, 90, gauge.Percent)
	assert.InDelta(t, gauge.Bounds.W*0.9, gauge.BarWidth, 1e-9)

	assert.Equal(t, 100, components.Health.Get(a).Current)
	assert.True(t, components.Melee.Get(a).Right.Active())
}

func TestLeftPunchKnocksLeft(t *testing.T) {
	e := newFloorWorld(t, 620)
	a := spawnAt(e, 0, 200, 520, factory.UnboundKeys())
	b := spawnAt(e, 1, 130, 520, factory.UnboundKeys())

	Punch(e.World, a, components.SideLeft)

	assert.Equal(t, -40.0, components.Physics.Get(b).Velocity.X)
	assert.Equal(t, 90, components.Health.Get(b).Current)
}

func TestPunchToggleRetractsWithoutSecondHit(t *testing.T) {
	e := newFloorWorld(t, 620)
	a := spawnAt(e, 0, 100, 520, factory.UnboundKeys())
	b := spawnAt(e, 1, 180, 520, factory.UnboundKeys())

	Punch(e.World, a, components.SideRight)
	struck := Punch(e.World, a, components.SideRight)

	assert.Empty(t, struck)
	assert.False(t, components.Melee.Get(a).Right.Active())
	assert.Equal(t, 90, components.Health.Get(b).Current)

	Punch(e.World, a, components.SideRight)
	assert.Equal(t, 80, components.Health.Get(b).Current)
}

func TestPunchMisses(t *testing.T) {
	e := newFloorWorld(t, 620)
	a := spawnAt(e, 0, 100, 520, factory.UnboundKeys())
	b := spawnAt(e, 1, 600, 520, factory.UnboundKeys())

	assert.Empty(t, Punch(e.World, a, components.SideRight))
	assert.Empty(t, Punch(e.World, a, components.SideLeft))
	assert.Equal(t, 100, components.Health.Get(b).Current)
	assert.Equal(t, components.Vector{}, components.Physics.Get(b).Velocity)
}

func TestPunchUsesCurrentPosition(t *testing.T) {
	e := newFloorWorld(t, 620)
	a := spawnAt(e, 0, 100, 520, factory.UnboundKeys())
	b := spawnAt(e, 1, 400, 520, factory.UnboundKeys())

	components.Physics.Get(a).Position.X = 330

	assert.Len(t, Punch(e.World, a, components.SideRight), 1)
	assert.Equal(t, 90, components.Health.Get(b).Current)
}

func TestPunchTestsBodiesNotHands(t *testing.T) {
	e := newFloorWorld(t, 620)
	a := spawnAt(e, 0, 100, 520, factory.UnboundKeys())
	// b's left hand reaches into a's right hand region but its body does not.
	b := spawnAt(e, 1, 220, 520, factory.UnboundKeys())
	components.Melee.Get(b).Left.Toggle()

	assert.Empty(t, Punch(e.World, a, components.SideRight))
	assert.Equal(t, 100, components.Health.Get(b).Current)
}

func TestPunchStrikesEveryOverlappingOpponent(t *testing.T) {
	e := newFloorWorld(t, 620)
	a := spawnAt(e, 0, 100, 520, factory.UnboundKeys())
	b := spawnAt(e, 1, 170, 520, factory.UnboundKeys())
	c := spawnAt(e, 2, 180, 480, factory.UnboundKeys())

	struck := Punch(e.World, a, components.SideRight)

	assert.Len(t, struck, 2)
	assert.Equal(t, 90, components.Health.Get(b).Current)
	assert.Equal(t, 90, components.Health.Get(c).Current)
}

func TestPunchInvalidSidePanics(t *testing.T) {
	e := newFloorWorld(t, 620)
	a := spawnAt(e, 0, 100, 520, factory.UnboundKeys())

	assert.PanicsWithValue(t, "combat: invalid punch side Side(5)", func() {
		Punch(e.World, a, components.Side(5))
	})
	melee := components.Melee.Get(a)
	assert.False(t, melee.Left.Active())
	assert.False(t, melee.Right.Active())
}

func TestGaugeToleratesNegativeHealth(t *testing.T) {
	e := newFloorWorld(t, 620)
	b := spawnAt(e, 1, 180, 520, factory.UnboundKeys())
	components.Health.Get(b).Current = 5

	ApplyHit(b, 1)

	assert.Equal(t, -5, components.Health.Get(b).Current)
	gauge := components.HealthBar.Get(b)
	assert.Equal(t, -5, gauge.Percent)
	assert.Equal(t, 0.0, gauge.BarWidth)
}
