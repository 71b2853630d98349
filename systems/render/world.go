// Package render paints the level. Every drawable is a rectangle and a
// color; nothing here changes simulation state.
package render

import (
	"image/color"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/gamemath"
	"github.com/automoto/tilebrawl/systems"
	"github.com/automoto/tilebrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
}

func DrawTiles(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		fillRect(screen, components.Tile.Get(e).Rect, cfg.UI.TileColor)
	})
}

// DrawCombatants draws each body and its extended hands.
func DrawCombatants(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		fillRect(screen, systems.CombatantRect(e), player.Color)

		melee := components.Melee.Get(e)
		for _, hand := range []*components.BodyPart{&melee.Left, &melee.Right} {
			if hand.Active() {
				fillRect(screen, hand.Rect, cfg.UI.HandColor)
			}
		}
	})
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(r.X), float32(r.Y),
		float32(r.W), float32(r.H),
		c, false)
}
