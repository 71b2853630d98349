package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives         int
	StartingLives int
}

var Lives = donburi.NewComponentType[LivesData]()
