package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and prints each
// combatant's kinematic state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvCharacter) {
				c = color.RGBA{0, 0, 255, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	y := 60
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		melee := components.Melee.Get(e)
		for _, hand := range []*components.BodyPart{&melee.Left, &melee.Right} {
			r := hand.Rect
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, color.RGBA{255, 0, 0, 255}, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s pos=(%.1f, %.1f) vel=(%.1f, %.1f) ground=%v",
			player.Name, physics.Position.X, physics.Position.Y,
			physics.Velocity.X, physics.Velocity.Y, physics.OnGround), 10, y)
		y += 16
	})
}
