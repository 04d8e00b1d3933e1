package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundBuzz   SoundType = iota // Wire touch strike
	SoundChime                   // Recatch and win
	SoundWhoosh                  // Wire morph
	soundTypeCount
)

// String returns the sound name used in config keys
func (s SoundType) String() string {
	switch s {
	case SoundBuzz:
		return "buzz"
	case SoundChime:
		return "chime"
	case SoundWhoosh:
		return "whoosh"
	default:
		return "unknown"
	}
}

// AudioConfig holds runtime audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
