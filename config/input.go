package config

// ActionID represents a logical combatant action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionPunchLeft
	ActionPunchRight
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionPunchLeft:
		return "punchLeft"
	case ActionPunchRight:
		return "punchRight"
	}
	return "unknown"
}

// ControlScheme binds each action to a key name. Names are the lower-case
// ebiten key names ("a", "arrowleft", "space", ...).
type ControlScheme struct {
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Jump       string `yaml:"jump"`
	PunchLeft  string `yaml:"punchLeft"`
	PunchRight string `yaml:"punchRight"`
}

// Keys returns the bound key names indexed by ActionID.
func (c ControlScheme) Keys() [ActionCount]string {
	return [ActionCount]string{
		ActionMoveLeft:   c.Left,
		ActionMoveRight:  c.Right,
		ActionJump:       c.Jump,
		ActionPunchLeft:  c.PunchLeft,
		ActionPunchRight: c.PunchRight,
	}
}

// DefaultControls are the two keyboard halves used for local play.
var DefaultControls = []ControlScheme{
	{Left: "a", Right: "d", Jump: "w", PunchLeft: "q", PunchRight: "e"},
	{Left: "j", Right: "l", Jump: "i", PunchLeft: "u", PunchRight: "o"},
}
