package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index int
	Name  string
	Color color.RGBA
	Spawn Vector
}

var Player = donburi.NewComponentType[PlayerData]()
