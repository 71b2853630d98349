package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Tile   = donburi.NewTag().SetName("Tile")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
)
