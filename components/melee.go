package components

import (
	"fmt"

	"github.com/automoto/tilebrawl/gamemath"
	"github.com/yohamta/donburi"
)

// Side selects a hand.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Direction returns -1 for the left hand and +1 for the right hand.
func (s Side) Direction() float64 {
	switch s {
	case SideLeft:
		return -1
	case SideRight:
		return 1
	}
	panic(fmt.Sprintf("combat: invalid punch side %v", s))
}

// LimbState is the two-state machine of a hand.
type LimbState int

const (
	LimbRetracted LimbState = iota
	LimbExtended
)

// BodyPart is a hitbox rigidly offset from its owner's top-left corner.
type BodyPart struct {
	Offset Vector
	Width  float64
	Height float64
	State  LimbState
	Rect   gamemath.Rect
}

// Active reports whether the hand is extended and can be drawn.
func (b *BodyPart) Active() bool {
	return b.State == LimbExtended
}

// Toggle flips the limb state and returns the new one.
func (b *BodyPart) Toggle() LimbState {
	if b.State == LimbExtended {
		b.State = LimbRetracted
	} else {
		b.State = LimbExtended
	}
	return b.State
}

// Sync repositions the hitbox against the owner's rectangle.
func (b *BodyPart) Sync(owner gamemath.Rect) {
	b.Rect = gamemath.Rect{
		X: owner.X + b.Offset.X,
		Y: owner.Y + b.Offset.Y,
		W: b.Width,
		H: b.Height,
	}
}

type MeleeData struct {
	Left  BodyPart
	Right BodyPart
}

// Part returns the hand on side s. An unknown side is a programming error.
func (m *MeleeData) Part(s Side) *BodyPart {
	switch s {
	case SideLeft:
		return &m.Left
	case SideRight:
		return &m.Right
	}
	panic(fmt.Sprintf("combat: invalid punch side %v", s))
}

// Sync repositions both hands.
func (m *MeleeData) Sync(owner gamemath.Rect) {
	m.Left.Sync(owner)
	m.Right.Sync(owner)
}

var Melee = donburi.NewComponentType[MeleeData]()
