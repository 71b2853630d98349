package scenes

import (
	"log"

	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/input"
	"github.com/automoto/tilebrawl/stage"
	"github.com/automoto/tilebrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Manager owns the current scene. After every level frame it checks
// whether the match ended and, if so, records the result and returns to
// the menu.
type Manager struct {
	current Scene

	LoadStage func() (*stage.Stage, error)
	Poll      func() input.Snapshot
	NewMenu   func(m *Manager, result string, tally *systems.SavedResults) Scene

	// Watcher restarts a running level when the stage file changes.
	Watcher *StageWatcher
}

// NewManager creates a manager that loads stages with load and reads the
// keyboard each frame.
func NewManager(load func() (*stage.Stage, error)) *Manager {
	return &Manager{
		LoadStage: load,
		Poll:      PollKeyboard,
		NewMenu: func(m *Manager, result string, tally *systems.SavedResults) Scene {
			return NewMenuScene(m.StartLevel, result, tally)
		},
	}
}

func (m *Manager) ChangeScene(scene Scene) {
	m.current = scene
}

func (m *Manager) Current() Scene {
	return m.current
}

// StartLevel loads the stage and switches to a fresh level.
func (m *Manager) StartLevel() error {
	st, err := m.LoadStage()
	if err != nil {
		return err
	}
	level, err := NewLevelScene(st, m.Poll)
	if err != nil {
		return err
	}
	m.ChangeScene(level)
	return nil
}

// ShowMenu switches to the menu with the saved tally.
func (m *Manager) ShowMenu(result string) {
	tally, err := systems.LoadResults()
	if err != nil {
		log.Printf("Warning: showing empty results: %v", err)
	}
	m.ChangeScene(m.NewMenu(m, result, tally))
}

func (m *Manager) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Hitboxes = !cfg.Debug.Hitboxes
	}
	m.reloadOnChange()

	if err := m.current.Update(); err != nil {
		return err
	}

	if level, ok := m.current.(*LevelScene); ok && !level.Active() {
		m.finishLevel(level)
	}
	return nil
}

func (m *Manager) Draw(screen *ebiten.Image) {
	m.current.Draw(screen)
}

func (m *Manager) finishLevel(level *LevelScene) {
	winner, ok := level.Winner()
	if _, err := systems.RecordWin(winner); err != nil {
		log.Printf("Warning: result not saved: %v", err)
	}
	m.ShowMenu(ResultMessage(winner, ok))
}

// reloadOnChange restarts the level when the watched stage file changed.
// A stage that fails to load is logged and the running level kept.
func (m *Manager) reloadOnChange() {
	if m.Watcher == nil {
		return
	}
	select {
	case err := <-m.Watcher.Errors:
		log.Printf("Warning: stage watcher: %v", err)
	default:
	}
	if !m.Watcher.Changed() {
		return
	}
	if _, ok := m.current.(*LevelScene); !ok {
		return
	}
	if err := m.StartLevel(); err != nil {
		log.Printf("Warning: stage reload failed: %v", err)
		return
	}
	log.Printf("stage reloaded")
}
