package config

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/hotwire/engine"
	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/physics"
	"github.com/lixenwraith/hotwire/wire"
)

// Settings is the user-facing game configuration
type Settings struct {
	Profile          string  `toml:"profile"`
	Seed             *uint32 `toml:"seed"` // nil selects the profile default
	MaxStrikes       int     `toml:"max_strikes"`
	CountdownSeconds float64 `toml:"countdown_seconds"`
	ControlMode      string  `toml:"control_mode"`
	UIScale          float64 `toml:"ui_scale"`
	Debug            bool    `toml:"debug"`
}

// Defaults returns the built-in settings
func Defaults() Settings {
	return Settings{
		Profile:          wire.Desktop.String(),
		MaxStrikes:       parameter.MaxStrikes,
		CountdownSeconds: parameter.CountdownDuration.Seconds(),
		ControlMode:      "pointer",
		UIScale:          1,
	}
}

// WireProfile parses the profile name
func (s Settings) WireProfile() (wire.Profile, error) {
	p, err := wire.ParseProfile(s.Profile)
	if err != nil {
		return p, fmt.Errorf("%w: %w", engine.ErrInvalidConfig, err)
	}
	return p, nil
}

// Mode parses the control mode name
func (s Settings) Mode() (physics.ControlMode, error) {
	m, err := physics.ParseControlMode(s.ControlMode)
	if err != nil {
		return m, fmt.Errorf("%w: %w", engine.ErrInvalidConfig, err)
	}
	return m, nil
}

// EngineConfig builds a validated simulation config for the given playable area
func (s Settings) EngineConfig(bounds wire.Rect) (engine.Config, error) {
	profile, err := s.WireProfile()
	if err != nil {
		return engine.Config{}, err
	}
	if _, err := s.Mode(); err != nil {
		return engine.Config{}, err
	}
	if math.IsNaN(s.CountdownSeconds) || math.IsInf(s.CountdownSeconds, 0) {
		return engine.Config{}, fmt.Errorf("%w: countdown %v", engine.ErrInvalidConfig, s.CountdownSeconds)
	}

	cfg := engine.DefaultConfig(profile)
	if s.Seed != nil {
		cfg.Seed = *s.Seed
		cfg.HazardSeed = cfg.Seed ^ parameter.HazardSeedSalt
	}
	cfg.MaxStrikes = s.MaxStrikes
	cfg.Countdown = time.Duration(s.CountdownSeconds * float64(time.Second))
	cfg.UIScale = s.UIScale
	cfg.Bounds = bounds

	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}
