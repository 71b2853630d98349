package systems

import (
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/gamemath"
	"github.com/yohamta/donburi"
)

// CombatantRect is the collision and drawn rectangle of a combatant,
// derived from its rounded position.
func CombatantRect(e *donburi.Entry) gamemath.Rect {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	return gamemath.RoundedRect(physics.Position, obj.W, obj.H)
}

// syncObject moves the resolv object onto the combatant's rounded rect and
// re-registers it with the space cells.
func syncObject(e *donburi.Entry) {
	rect := CombatantRect(e)
	obj := components.Object.Get(e)
	obj.X = rect.X
	obj.Y = rect.Y
	if obj.Space != nil {
		obj.Update()
	}
}
