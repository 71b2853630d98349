package scenes

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/fonts"
	"github.com/automoto/tilebrawl/systems"
	"github.com/automoto/tilebrawl/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	promptText     = "Press Enter to fight"
	promptFadeSecs = 1.2
	promptMinAlpha = 0.2
)

// MenuScene shows the title, the last result and the saved tally.
type MenuScene struct {
	ui      *ui.MenuUI
	onFight func() error

	err  error
	quit bool

	prompt      *gween.Tween
	promptAlpha float32
	fadeOut     bool
}

// NewMenuScene builds the menu. result is the outcome of the match that
// just ended, empty on first launch.
func NewMenuScene(onFight func() error, result string, tally *systems.SavedResults) *MenuScene {
	ms := &MenuScene{
		onFight:     onFight,
		promptAlpha: 1,
	}
	ms.ui = ui.NewMenuUI(ms.fight, func() { ms.quit = true })
	ms.ui.SetResult(result)
	ms.ui.SetTally(FormatTally(tally))
	ms.nextFade()
	return ms
}

func (ms *MenuScene) fight() {
	if ms.onFight != nil {
		ms.err = ms.onFight()
	}
}

func (ms *MenuScene) Update() error {
	ms.ui.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ms.fight()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ms.quit = true
	}
	ms.advanceFade(1 / float32(cfg.C.TPS))

	if ms.err != nil {
		return ms.err
	}
	if ms.quit {
		return ebiten.Termination
	}
	return nil
}

// advanceFade pulses the prompt between promptMinAlpha and fully opaque.
func (ms *MenuScene) advanceFade(dt float32) {
	alpha, finished := ms.prompt.Update(dt)
	ms.promptAlpha = alpha
	if finished {
		ms.nextFade()
	}
}

func (ms *MenuScene) nextFade() {
	if ms.fadeOut {
		ms.prompt = gween.New(1, promptMinAlpha, promptFadeSecs, ease.InOutSine)
	} else {
		ms.prompt = gween.New(promptMinAlpha, 1, promptFadeSecs, ease.InOutSine)
	}
	ms.fadeOut = !ms.fadeOut
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ms.ui.Draw(screen)

	if !fonts.Loaded(fonts.Regular) {
		return
	}
	c := cfg.UI.TextColor
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * ms.promptAlpha)}
	x := (cfg.C.Width - len(promptText)*8) / 2
	text.Draw(screen, promptText, fonts.Regular.Get(), x, cfg.C.Height-60, clr)
}

// FormatTally renders saved win counts as "P1 2 - P2 1 (3 matches)".
func FormatTally(r *systems.SavedResults) string {
	if r == nil || r.Matches == 0 {
		return "No matches played yet"
	}
	names := make([]string, 0, len(r.Wins))
	for name := range r.Wins {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %d", name, r.Wins[name]))
	}
	matches := "matches"
	if r.Matches == 1 {
		matches = "match"
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d %s", r.Matches, matches)
	}
	return fmt.Sprintf("%s (%d %s)", strings.Join(parts, " - "), r.Matches, matches)
}

// ResultMessage describes how a match ended.
func ResultMessage(winner string, ok bool) string {
	if !ok {
		return "Match over"
	}
	return winner + " wins!"
}
