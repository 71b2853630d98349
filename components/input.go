package components

import (
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/input"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData binds a combatant to keys and stores this and the
// previous frame's action state for edge detection.
type PlayerInputData struct {
	Bindings      [cfg.ActionCount]input.Key
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
}

// Capture shifts the current state to previous and reads the bound keys
// from snap.
func (p *PlayerInputData) Capture(snap input.Snapshot) {
	p.PreviousInput = p.CurrentInput
	for id, key := range p.Bindings {
		p.CurrentInput[id] = snap.Pressed(key)
	}
}

// Action returns the full ActionState for an action ID.
func (p *PlayerInputData) Action(id cfg.ActionID) ActionState {
	if id < 0 || id >= cfg.ActionCount {
		return ActionState{}
	}
	curr := p.CurrentInput[id]
	prev := p.PreviousInput[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
