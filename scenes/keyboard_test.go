package scenes

import (
	"testing"

	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyByName(t *testing.T) {
	cases := map[string]ebiten.Key{
		"a":         ebiten.KeyA,
		"A":         ebiten.KeyA,
		"space":     ebiten.KeySpace,
		"ArrowLeft": ebiten.KeyArrowLeft,
		"left":      ebiten.KeyArrowLeft,
		" o ":       ebiten.KeyO,
	}
	for name, want := range cases {
		got, err := KeyByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, input.Key(want), got, name)
	}

	_, err := KeyByName("hyperdrive")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestResolveDefaultControls(t *testing.T) {
	keys, err := ResolveControls(cfg.DefaultControls[0])
	require.NoError(t, err)
	assert.Equal(t, input.Key(ebiten.KeyA), keys[cfg.ActionMoveLeft])
	assert.Equal(t, input.Key(ebiten.KeyD), keys[cfg.ActionMoveRight])
	assert.Equal(t, input.Key(ebiten.KeyW), keys[cfg.ActionJump])
	assert.Equal(t, input.Key(ebiten.KeyQ), keys[cfg.ActionPunchLeft])
	assert.Equal(t, input.Key(ebiten.KeyE), keys[cfg.ActionPunchRight])
}

func TestResolveControlsUnbound(t *testing.T) {
	keys, err := ResolveControls(cfg.ControlScheme{Left: "j"})
	require.NoError(t, err)
	assert.Equal(t, input.Key(ebiten.KeyJ), keys[cfg.ActionMoveLeft])
	assert.Equal(t, input.NoKey, keys[cfg.ActionJump])

	_, err = ResolveControls(cfg.ControlScheme{Jump: "nope"})
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.ErrorContains(t, err, cfg.ActionJump.String())
}
