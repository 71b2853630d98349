package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// fileConfig mirrors the overridable subset of the globals. Sections that
// are absent from the file keep their current values.
type fileConfig struct {
	Window   Config          `yaml:"window"`
	Physics  PhysicsConfig   `yaml:"physics"`
	Player   PlayerConfig    `yaml:"player"`
	Combat   CombatConfig    `yaml:"combat"`
	Controls []ControlScheme `yaml:"controls"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Load overlays YAML data onto the current configuration. Nothing is
// applied unless the whole document decodes and validates.
func Load(data []byte) error {
	fc := fileConfig{
		Window:  *C,
		Physics: Physics,
		Player:  Player,
		Combat:  Combat,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}

	if err := fc.validate(); err != nil {
		return err
	}

	window := fc.Window
	C = &window
	Physics = fc.Physics
	Player = fc.Player
	Combat = fc.Combat
	for i, controls := range fc.Controls {
		if i >= len(Slots) {
			break
		}
		Slots[i].Controls = controls
	}
	return nil
}

func (fc *fileConfig) validate() error {
	switch {
	case fc.Window.Width <= 0 || fc.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, fc.Window.Width, fc.Window.Height)
	case fc.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, fc.Window.TPS)
	case fc.Player.Width <= 0 || fc.Player.Height <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalid, fc.Player.Width, fc.Player.Height)
	case fc.Player.Health <= 0 || fc.Player.Health > 100:
		return fmt.Errorf("%w: player health %d", ErrInvalid, fc.Player.Health)
	case fc.Player.MaxSpeedX < 0:
		return fmt.Errorf("%w: maxSpeedX %v", ErrInvalid, fc.Player.MaxSpeedX)
	case fc.Physics.FrictionAir < 0 || fc.Physics.FrictionFloor < 0:
		return fmt.Errorf("%w: negative friction", ErrInvalid)
	case fc.Combat.HandWidth <= 0 || fc.Combat.HandHeight <= 0:
		return fmt.Errorf("%w: hand size %vx%v", ErrInvalid, fc.Combat.HandWidth, fc.Combat.HandHeight)
	}
	return nil
}
