// Package input holds the per-frame key-state table consumed by the
// simulation. It does not know about any input device.
package input

// Key identifies a physical key. Values are assigned by the device layer.
type Key int

// KeyCount bounds the table. It covers every ebiten key code.
const KeyCount = 256

// NoKey is an unbound key. It never reads as pressed.
const NoKey Key = -1

// Snapshot is an immutable-by-value table of key states captured once per
// frame. Writes and reads outside [0, KeyCount) are ignored.
type Snapshot struct {
	pressed [KeyCount]bool
}

// Set records the state of k. Out-of-range keys are ignored.
func (s *Snapshot) Set(k Key, down bool) {
	if k < 0 || int(k) >= KeyCount {
		return
	}
	s.pressed[k] = down
}

// Pressed reports whether k was down when the snapshot was taken.
func (s Snapshot) Pressed(k Key) bool {
	if k < 0 || int(k) >= KeyCount {
		return false
	}
	return s.pressed[k]
}

// With returns a snapshot with the given keys held. Handy for tests and
// scripted frames.
func With(keys ...Key) Snapshot {
	var s Snapshot
	for _, k := range keys {
		s.Set(k, true)
	}
	return s
}
