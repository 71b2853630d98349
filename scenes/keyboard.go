package scenes

import (
	"errors"
	"fmt"
	"strings"

	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownKey = errors.New("unknown key name")

var keyNames = map[string]input.Key{}

var keyAliases = map[string]ebiten.Key{
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"ctrl":  ebiten.KeyControl,
}

func init() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		keyNames[strings.ToLower(k.String())] = input.Key(k)
	}
	for name, k := range keyAliases {
		keyNames[name] = input.Key(k)
	}
}

// KeyByName resolves a key name such as "a", "Space" or "ArrowLeft",
// ignoring case.
func KeyByName(name string) (input.Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return input.NoKey, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

// ResolveControls maps a control scheme to key codes. An empty name leaves
// that action unbound.
func ResolveControls(c cfg.ControlScheme) ([cfg.ActionCount]input.Key, error) {
	var keys [cfg.ActionCount]input.Key
	for id, name := range c.Keys() {
		if name == "" {
			keys[id] = input.NoKey
			continue
		}
		k, err := KeyByName(name)
		if err != nil {
			return keys, fmt.Errorf("%s: %w", cfg.ActionID(id), err)
		}
		keys[id] = k
	}
	return keys, nil
}

// PollKeyboard snapshots every key ebiten knows about.
func PollKeyboard() input.Snapshot {
	var snap input.Snapshot
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		snap.Set(input.Key(k), ebiten.IsKeyPressed(k))
	}
	return snap
}
