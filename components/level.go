package components

import (
	"github.com/automoto/tilebrawl/stage"
	"github.com/yohamta/donburi"
)

// LevelData is the level singleton. Active turns false once any combatant
// runs out of lives; the scene manager polls it every frame.
type LevelData struct {
	Stage  *stage.Stage
	Active bool
	Frame  int

	// Loser is the player index that ended the level, -1 while active.
	Loser int
}

var Level = donburi.NewComponentType[LevelData]()

var Tile = donburi.NewComponentType[stage.Tile]()
