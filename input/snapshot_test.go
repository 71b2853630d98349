package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotSetAndPressed(t *testing.T) {
	var s Snapshot
	s.Set(4, true)
	assert.True(t, s.Pressed(4))
	assert.False(t, s.Pressed(5))

	s.Set(4, false)
	assert.False(t, s.Pressed(4))
}

func TestSnapshotOutOfRangeIgnored(t *testing.T) {
	var s Snapshot
	assert.NotPanics(t, func() {
		s.Set(-3, true)
		s.Set(KeyCount, true)
		s.Set(KeyCount+100, true)
	})
	assert.False(t, s.Pressed(-3))
	assert.False(t, s.Pressed(NoKey))
	assert.False(t, s.Pressed(KeyCount))
	assert.Equal(t, Snapshot{}, s)
}

func TestWithCopiesByValue(t *testing.T) {
	a := With(1, 2)
	b := a
	b.Set(1, false)
	assert.True(t, a.Pressed(1))
	assert.False(t, b.Pressed(1))
	assert.True(t, b.Pressed(2))
}
