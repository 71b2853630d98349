package components

import (
	"github.com/automoto/tilebrawl/gamemath"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector = gamemath.Vec

// PhysicsData is the authoritative kinematic state of a combatant. The
// collision rectangle is always derived from Position.
type PhysicsData struct {
	Position    Vector
	Velocity    Vector
	MaxVelocity Vector // X clamps every frame, Y is advisory
	OnGround    bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
