package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/wire"
)

// ErrInvalidConfig wraps every construction-time configuration failure
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds construction-time simulation settings
type Config struct {
	Profile    wire.Profile
	Seed       uint32 // Course seed
	HazardSeed uint32 // Hazard and jitter stream seed

	Bounds  wire.Rect // Playable area in presentation space
	UIScale float64

	MaxStrikes    int
	Countdown     time.Duration
	RespawnDelay  time.Duration
	RecatchWindow time.Duration
	MorphDuration time.Duration
	MaxDelta      time.Duration
}

// DefaultConfig returns the built-in tuning for profile
// Bounds are left empty and must be supplied by the frontend
func DefaultConfig(profile wire.Profile) Config {
	seed := uint32(parameter.DesktopSeed)
	if profile == wire.Mobile {
		seed = parameter.MobileSeed
	}
	return Config{
		Profile:       profile,
		Seed:          seed,
		HazardSeed:    seed ^ parameter.HazardSeedSalt,
		UIScale:       1,
		MaxStrikes:    parameter.MaxStrikes,
		Countdown:     parameter.CountdownDuration,
		RespawnDelay:  parameter.RespawnDelay,
		RecatchWindow: parameter.RecatchWindow,
		MorphDuration: parameter.MorphDuration,
		MaxDelta:      parameter.MaxDelta,
	}
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if !c.Profile.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, wire.ErrUnknownProfile)
	}
	if c.MaxStrikes < 1 {
		return fmt.Errorf("%w: max strikes %d < 1", ErrInvalidConfig, c.MaxStrikes)
	}
	if !c.Bounds.Valid() {
		return fmt.Errorf("%w: empty bounds %+v", ErrInvalidConfig, c.Bounds)
	}
	if !(c.UIScale > 0) {
		return fmt.Errorf("%w: ui scale %v", ErrInvalidConfig, c.UIScale)
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"countdown", c.Countdown},
		{"respawn delay", c.RespawnDelay},
		{"recatch window", c.RecatchWindow},
		{"morph duration", c.MorphDuration},
		{"max delta", c.MaxDelta},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, d.name, d.d)
		}
	}
	return nil
}
