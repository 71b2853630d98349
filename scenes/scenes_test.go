package scenes

import (
	"errors"
	"testing"

	"github.com/automoto/tilebrawl/assets"
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/input"
	"github.com/automoto/tilebrawl/stage"
	"github.com/automoto/tilebrawl/systems"
	"github.com/automoto/tilebrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func loadArena() (*stage.Stage, error) {
	return stage.Load(assets.StageFS, assets.DefaultStage)
}

func idle() input.Snapshot { return input.Snapshot{} }

type stubMenu struct {
	result string
	tally  *systems.SavedResults
}

func (s *stubMenu) Update() error             { return nil }
func (s *stubMenu) Draw(screen *ebiten.Image) {}

func newTestManager() *Manager {
	m := NewManager(loadArena)
	m.Poll = idle
	m.NewMenu = func(_ *Manager, result string, tally *systems.SavedResults) Scene {
		return &stubMenu{result: result, tally: tally}
	}
	return m
}

func TestNewLevelSceneSpawnsSlots(t *testing.T) {
	st, err := loadArena()
	require.NoError(t, err)

	level, err := NewLevelScene(st, idle)
	require.NoError(t, err)
	assert.True(t, level.Active())

	var names []string
	tags.Player.Each(level.World(), func(e *donburi.Entry) {
		names = append(names, components.Player.Get(e).Name)
	})
	assert.ElementsMatch(t, []string{"P1", "P2"}, names)

	require.NoError(t, level.Update())
	assert.True(t, level.Active())
}

func TestNewLevelSceneRejectsBadControls(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Slots[1].Controls.Jump = "warp"

	st, err := loadArena()
	require.NoError(t, err)
	_, err = NewLevelScene(st, idle)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestManagerReturnsToMenuWhenLevelEnds(t *testing.T) {
	m := newTestManager()
	require.NoError(t, m.StartLevel())
	level, ok := m.Current().(*LevelScene)
	require.True(t, ok)

	tags.Player.Each(level.World(), func(e *donburi.Entry) {
		if components.Player.Get(e).Name == "P2" {
			components.Lives.Get(e).Lives = 0
			components.Health.Get(e).Current = 0
		}
	})
	require.NoError(t, m.Update())

	menu, ok := m.Current().(*stubMenu)
	require.True(t, ok)
	assert.Equal(t, "P1 wins!", menu.result)
	assert.NotNil(t, menu.tally)
}

func TestManagerStaysInLevelWhileActive(t *testing.T) {
	m := newTestManager()
	require.NoError(t, m.StartLevel())

	for range 5 {
		require.NoError(t, m.Update())
	}
	_, ok := m.Current().(*LevelScene)
	assert.True(t, ok)
}

func TestManagerStartLevelPropagatesLoadErrors(t *testing.T) {
	m := newTestManager()
	boom := errors.New("boom")
	m.LoadStage = func() (*stage.Stage, error) { return nil, boom }
	m.ShowMenu("")

	assert.ErrorIs(t, m.StartLevel(), boom)
	_, ok := m.Current().(*stubMenu)
	assert.True(t, ok)
}

func TestFormatTally(t *testing.T) {
	assert.Equal(t, "No matches played yet", FormatTally(nil))
	assert.Equal(t, "No matches played yet", FormatTally(&systems.SavedResults{}))
	assert.Equal(t, "1 match", FormatTally(&systems.SavedResults{Matches: 1}))
	assert.Equal(t, "P1 2 - P2 1 (3 matches)", FormatTally(&systems.SavedResults{
		Matches: 3,
		Wins:    map[string]int{"P2": 1, "P1": 2},
	}))
}

func TestResultMessage(t *testing.T) {
	assert.Equal(t, "P2 wins!", ResultMessage("P2", true))
	assert.Equal(t, "Match over", ResultMessage("", false))
}
