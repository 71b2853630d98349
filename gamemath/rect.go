package gamemath

import "math"

// Vec is a 2D vector in world units. Positive Y points down.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RoundedRect returns the rectangle at pos rounded to the nearest integer.
func RoundedRect(pos Vec, w, h float64) Rect {
	return Rect{X: math.Round(pos.X), Y: math.Round(pos.Y), W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share interior area. Edges that only
// touch do not overlap, and empty rectangles never overlap anything.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
