package components

import (
	"github.com/automoto/tilebrawl/gamemath"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// GaugeData is a two-rectangle progress bar: the background spans Bounds,
// the foreground spans BarWidth from the left edge.
type GaugeData struct {
	Bounds   gamemath.Rect
	Percent  int
	BarWidth float64
}

// SetPercent stores p and recomputes the bar width. Values outside 0..100
// are kept in Percent but the bar never leaves its background.
func (g *GaugeData) SetPercent(p int) {
	g.Percent = p
	clamped := min(max(p, 0), 100)
	g.BarWidth = g.Bounds.W * float64(clamped) / 100
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[GaugeData]()
