package factory

import (
	"image/color"

	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/gamemath"
	"github.com/automoto/tilebrawl/input"
	"github.com/automoto/tilebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CombatantConfig describes one combatant to spawn.
type CombatantConfig struct {
	Index    int
	Name     string
	Color    color.RGBA
	Spawn    components.Vector
	Bindings [cfg.ActionCount]input.Key
}

// UnboundKeys returns a binding table with every action unbound.
func UnboundKeys() [cfg.ActionCount]input.Key {
	var keys [cfg.ActionCount]input.Key
	for i := range keys {
		keys[i] = input.NoKey
	}
	return keys
}

func CreateCombatant(ecs *ecs.ECS, c CombatantConfig) *donburi.Entry {
	player := archetypes.Combatant.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	rect := gamemath.RoundedRect(c.Spawn, w, h)

	obj := resolv.NewObject(rect.X, rect.Y, w, h, tags.ResolvCharacter)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Index: c.Index,
		Name:  c.Name,
		Color: c.Color,
		Spawn: c.Spawn,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Position:    c.Spawn,
		MaxVelocity: components.Vector{X: cfg.Player.MaxSpeedX, Y: cfg.Player.MaxSpeedY},
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:         cfg.Player.StartingLives,
		StartingLives: cfg.Player.StartingLives,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		Bindings: c.Bindings,
	})

	melee := components.MeleeData{
		Left: components.BodyPart{
			Offset: components.Vector{X: -cfg.Combat.HandWidth, Y: h / 2},
			Width:  cfg.Combat.HandWidth,
			Height: cfg.Combat.HandHeight,
		},
		Right: components.BodyPart{
			Offset: components.Vector{X: w, Y: h / 2},
			Width:  cfg.Combat.HandWidth,
			Height: cfg.Combat.HandHeight,
		},
	}
	melee.Sync(rect)
	components.Melee.SetValue(player, melee)

	gauge := components.GaugeData{Bounds: gaugeBounds(c.Index)}
	gauge.SetPercent(100)
	components.HealthBar.SetValue(player, gauge)

	return player
}

// gaugeBounds places even players' gauges on the left edge and odd
// players' on the right, stacking pairs downward.
func gaugeBounds(index int) gamemath.Rect {
	ui := cfg.UI
	x := ui.GaugeMargin
	if index%2 == 1 {
		x = float64(cfg.C.Width) - ui.GaugeMargin - ui.GaugeWidth
	}
	row := float64(index / 2)
	return gamemath.Rect{
		X: x,
		Y: ui.GaugeMargin + row*(ui.GaugeHeight+3*ui.GaugeMargin),
		W: ui.GaugeWidth,
		H: ui.GaugeHeight,
	}
}
