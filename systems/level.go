package systems

import (
	"log"

	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel advances the frame counter of an active level.
func UpdateLevel(ecs *ecs.ECS) {
	if level, ok := levelData(ecs.World); ok && level.Active {
		level.Frame++
	}
}

// IsLevelActive reports whether the level is still being played. A world
// without a level is never active.
func IsLevelActive(w donburi.World) bool {
	level, ok := levelData(w)
	return ok && level.Active
}

// WithLevelActive wraps a system to skip execution once the level ended.
func WithLevelActive(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsLevelActive(e.World) {
			return
		}
		system(e)
	}
}

// Winner returns the name of a combatant other than the loser once the
// level has ended. ok is false while the level is active or nobody else
// is left.
func Winner(w donburi.World) (name string, ok bool) {
	level, found := levelData(w)
	if !found || level.Active || level.Loser < 0 {
		return "", false
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		if ok {
			return
		}
		player := components.Player.Get(e)
		if player.Index != level.Loser {
			name, ok = player.Name, true
		}
	})
	return name, ok
}

func endLevel(w donburi.World, loser int) {
	level, ok := levelData(w)
	if !ok || !level.Active {
		return
	}
	level.Active = false
	level.Loser = loser
	log.Printf("level over after %d frames, player %d is out of lives", level.Frame, loser)
}

func levelData(w donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}
