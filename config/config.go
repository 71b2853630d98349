package config

import "image/color"

// PhysicsConfig contains the per-frame integration constants.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	FrictionFloor float64 `yaml:"frictionFloor"`
	FrictionAir   float64 `yaml:"frictionAir"`

	// FallLimit is the Y position past which a combatant has fallen out of
	// the stage and is reset.
	FallLimit float64 `yaml:"fallLimit"`

	// GroundProbe extends the collision rectangle downward so a body resting
	// exactly on a tile top keeps touching it.
	GroundProbe float64 `yaml:"groundProbe"`
}

// PlayerConfig contains all combatant-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jumpSpeed"`
	MaxSpeedX float64 `yaml:"maxSpeedX"`
	MaxSpeedY float64 `yaml:"maxSpeedY"` // advisory, never enforced

	// Health and lives
	Health        int `yaml:"health"`
	StartingLives int `yaml:"startingLives"`
}

// CombatConfig contains punch tuning.
type CombatConfig struct {
	PunchDamage    int     `yaml:"punchDamage"`
	PunchKnockback float64 `yaml:"punchKnockback"`
	PunchPopup     float64 `yaml:"punchPopup"`

	// Hand hitbox size
	HandWidth  float64 `yaml:"handWidth"`
	HandHeight float64 `yaml:"handHeight"`
}

// SlotConfig describes one local player: where they spawn, how they are
// drawn and which keys drive them.
type SlotConfig struct {
	Name     string        `yaml:"name"`
	SpawnX   float64       `yaml:"spawnX"`
	SpawnY   float64       `yaml:"spawnY"`
	Color    color.RGBA    `yaml:"-"`
	Controls ControlScheme `yaml:"controls"`
}

// UIConfig contains HUD and palette values
type UIConfig struct {
	GaugeWidth  float64
	GaugeHeight float64
	GaugeMargin float64

	GaugeBgColor    color.RGBA
	GaugeFgColor    color.RGBA
	TileColor       color.RGBA
	HandColor       color.RGBA
	BackgroundColor color.RGBA
	TextColor       color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// DebugConfig contains command-line options
type DebugConfig struct {
	SkipMenu  bool   // Skip menu and go directly to the level
	StagePath string // Stage file on disk, empty = embedded arena
	Watch     bool   // Reload the stage file when it changes
	Hitboxes  bool   // Outline collision objects, toggled with F1
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Combat CombatConfig
var Slots []SlotConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	DarkGray  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	HealthFg  = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Direction constants for punches and movement
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "tilebrawl",
	}

	Physics = PhysicsConfig{
		Gravity:       3,
		FrictionFloor: 10,
		FrictionAir:   0.3,
		FallLimit:     1000,
		GroundProbe:   1,
	}

	Player = PlayerConfig{
		Width:         50,
		Height:        100,
		Speed:         15,
		JumpSpeed:     40,
		MaxSpeedX:     15,
		MaxSpeedY:     20,
		Health:        100,
		StartingLives: 3,
	}

	Combat = CombatConfig{
		PunchDamage:    10,
		PunchKnockback: 40,
		PunchPopup:     10,
		HandWidth:      40,
		HandHeight:     10,
	}

	Slots = []SlotConfig{
		{
			Name:     "P1",
			SpawnX:   100,
			SpawnY:   100,
			Color:    Red,
			Controls: DefaultControls[0],
		},
		{
			Name:     "P2",
			SpawnX:   800,
			SpawnY:   100,
			Color:    Green,
			Controls: DefaultControls[1],
		},
	}

	UI = UIConfig{
		GaugeWidth:      200,
		GaugeHeight:     16,
		GaugeMargin:     10,
		GaugeBgColor:    DarkGray,
		GaugeFgColor:    HealthFg,
		TileColor:       White,
		HandColor:       LightBlue,
		BackgroundColor: Black,
		TextColor:       White,
	}

	Debug = DebugConfig{}
}
