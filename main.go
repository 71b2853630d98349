package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/tilebrawl/assets"
	"github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/fonts"
	"github.com/automoto/tilebrawl/scenes"
	"github.com/automoto/tilebrawl/stage"
	"github.com/automoto/tilebrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scenes *scenes.Manager
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	m := scenes.NewManager(stageLoader(config.Debug.StagePath))
	if config.Debug.Watch && config.Debug.StagePath != "" {
		w, err := scenes.NewStageWatcher(config.Debug.StagePath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", config.Debug.StagePath, err)
		} else {
			m.Watcher = w
		}
	}

	if config.Debug.SkipMenu {
		if err := m.StartLevel(); err != nil {
			return nil, err
		}
	} else {
		m.ShowMenu("")
	}

	return &Game{scenes: m}, nil
}

// stageLoader returns the stage source: the file at path, or the embedded
// arena when path is empty.
func stageLoader(path string) func() (*stage.Stage, error) {
	if path == "" {
		return func() (*stage.Stage, error) {
			return stage.Load(assets.StageFS, assets.DefaultStage)
		}
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	fsys := os.DirFS(dir)
	return func() (*stage.Stage, error) {
		return stage.Load(fsys, file)
	}
}

func (g *Game) Update() error {
	return g.scenes.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scenes.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	flag.StringVar(&config.Debug.StagePath, "stage", "", "Stage file (.yaml or .tmx), default is the built-in arena")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Start directly in the level")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "Restart the level when the stage file changes")
	flag.Parse()

	if *configPath != "" {
		dir, file := filepath.Split(*configPath)
		if dir == "" {
			dir = "."
		}
		if err := config.LoadFile(os.DirFS(dir), file); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if w := game.scenes.Watcher; w != nil {
			_ = w.Close()
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
