package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	cases := []struct {
		name string
		o    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"empty", Rect{X: 2, Y: 2, W: 0, H: 5}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Overlaps(c.o))
			assert.Equal(t, c.want, c.o.Overlaps(base))
		})
	}
}

func TestRoundedRect(t *testing.T) {
	r := RoundedRect(Vec{X: 10.4, Y: 19.5}, 50, 100)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 50, H: 100}, r)
	assert.Equal(t, 120.0, r.Bottom())
	assert.Equal(t, 60.0, r.Right())
}
