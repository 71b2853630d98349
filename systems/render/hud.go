package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/fonts"
	"github.com/automoto/tilebrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const livesMargin = 5

// DrawHUD renders every combatant's health gauge with its name and lives
// below it.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		gauge := components.HealthBar.Get(e)
		drawGauge(screen, gauge)

		if !fonts.Loaded(fonts.Small) {
			return
		}
		player := components.Player.Get(e)
		lives := components.Lives.Get(e)
		label := fmt.Sprintf("%s  lives %d", player.Name, max(lives.Lives, 0))
		x := int(gauge.Bounds.X)
		y := int(gauge.Bounds.Bottom()) + livesMargin + 12
		text.Draw(screen, label, fonts.Small.Get(), x, y, cfg.UI.TextColor)
	})
}

func drawGauge(screen *ebiten.Image, g *components.GaugeData) {
	b := g.Bounds
	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.W), float32(b.H),
		cfg.UI.GaugeBgColor, false)
	if g.BarWidth <= 0 {
		return
	}
	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(g.BarWidth), float32(b.H),
		gaugeColor(g.Percent), false)
}

// gaugeColor fades the bar toward red as health drops.
func gaugeColor(percent int) color.RGBA {
	c := cfg.UI.GaugeFgColor
	if percent > 30 {
		return c
	}
	return color.RGBA{R: 220, G: c.G / 2, B: c.B / 2, A: 255}
}
