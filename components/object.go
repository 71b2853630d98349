package components

import (
	"github.com/automoto/tilebrawl/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv object. For combatants the
// object mirrors the rounded collision rectangle; tiles never move.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object bounds.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision broadphase shared by every object of a level.
var Space = donburi.NewComponentType[resolv.Space]()
