package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverlaysOnlyGivenFields(t *testing.T) {
	t.Cleanup(Reset)

	err := Load([]byte(`
physics:
  gravity: 2
player:
  startingLives: 5
controls:
  - left: arrowleft
    right: arrowright
    jump: arrowup
    punchLeft: comma
    punchRight: period
`))
	require.NoError(t, err)

	assert.Equal(t, 2.0, Physics.Gravity)
	assert.Equal(t, 10.0, Physics.FrictionFloor)
	assert.Equal(t, 5, Player.StartingLives)
	assert.Equal(t, 100, Player.Health)
	assert.Equal(t, 1280, C.Width)
	assert.Equal(t, "arrowleft", Slots[0].Controls.Left)
	assert.Equal(t, DefaultControls[1], Slots[1].Controls)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	t.Cleanup(Reset)

	err := Load([]byte("physics:\n  gravitee: 2\n"))
	require.Error(t, err)
	assert.Equal(t, 3.0, Physics.Gravity)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Cleanup(Reset)

	for _, doc := range []string{
		"player:\n  health: 0\n",
		"player:\n  health: 150\n",
	} {
		err := Load([]byte(doc))
		require.ErrorIs(t, err, ErrInvalid, doc)
		assert.Equal(t, 100, Player.Health)
	}

	require.NoError(t, Load([]byte("player:\n  health: 60\n")))
	assert.Equal(t, 60, Player.Health)
}

func TestLoadEmptyDocumentKeepsDefaults(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, Load(nil))
	assert.Equal(t, 3.0, Physics.Gravity)
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(Reset)

	fsys := fstest.MapFS{
		"tilebrawl.yaml": {Data: []byte("combat:\n  punchDamage: 25\n")},
	}
	require.NoError(t, LoadFile(fsys, "tilebrawl.yaml"))
	assert.Equal(t, 25, Combat.PunchDamage)

	assert.Error(t, LoadFile(fsys, "missing.yaml"))
}

func TestControlSchemeKeys(t *testing.T) {
	keys := DefaultControls[0].Keys()
	assert.Equal(t, "a", keys[ActionMoveLeft])
	assert.Equal(t, "d", keys[ActionMoveRight])
	assert.Equal(t, "w", keys[ActionJump])
	assert.Equal(t, "q", keys[ActionPunchLeft])
	assert.Equal(t, "e", keys[ActionPunchRight])
}
