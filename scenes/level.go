package scenes

import (
	"fmt"
	"log"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/input"
	"github.com/automoto/tilebrawl/stage"
	"github.com/automoto/tilebrawl/systems"
	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/automoto/tilebrawl/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs one match on a stage. It never leaves by itself; the
// manager polls Active and moves on once it turns false.
type LevelScene struct {
	ecs   *ecs.ECS
	stage *stage.Stage
}

// NewLevelScene builds the level world for st with one combatant per
// configured slot. poll supplies the input snapshot for each frame.
func NewLevelScene(st *stage.Stage, poll func() input.Snapshot) (*LevelScene, error) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, st)

	for i, slot := range cfg.Slots {
		keys, err := ResolveControls(slot.Controls)
		if err != nil {
			return nil, fmt.Errorf("player %s controls: %w", slot.Name, err)
		}
		factory.CreateCombatant(e, factory.CombatantConfig{
			Index:    i,
			Name:     slot.Name,
			Color:    slot.Color,
			Spawn:    components.Vector{X: slot.SpawnX, Y: slot.SpawnY},
			Bindings: keys,
		})
	}

	systems.AddSimulationSystems(e, poll)

	e.AddRenderer(cfg.Default, render.DrawBackground)
	e.AddRenderer(cfg.Default, render.DrawTiles)
	e.AddRenderer(cfg.Default, render.DrawCombatants)
	e.AddRenderer(cfg.Default, render.DrawHUD)
	e.AddRenderer(cfg.Default, render.DrawDebug)

	log.Printf("level %q started with %d players", st.Name, len(cfg.Slots))
	return &LevelScene{ecs: e, stage: st}, nil
}

func (ls *LevelScene) Update() error {
	ls.ecs.Update()
	return nil
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	ls.ecs.Draw(screen)
}

// Active reports whether the match is still running.
func (ls *LevelScene) Active() bool {
	return systems.IsLevelActive(ls.ecs.World)
}

// Winner names the surviving player once the match is over.
func (ls *LevelScene) Winner() (string, bool) {
	return systems.Winner(ls.ecs.World)
}

func (ls *LevelScene) Stage() *stage.Stage {
	return ls.stage
}

func (ls *LevelScene) World() donburi.World {
	return ls.ecs.World
}
