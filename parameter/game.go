package parameter

import "time"

// Game rules
const (
	MaxStrikes = 3

	CountdownDuration = 5 * time.Second

	// RespawnDelay is the freeze between a strike and the respawn countdown
	RespawnDelay = 260 * time.Millisecond

	// MaxDelta caps integration step length during frame hitches
	MaxDelta = 33 * time.Millisecond

	// WinProgressFraction is the share of total wire length that must be reached
	WinProgressFraction = 0.985
)

// Geometry in presentation units, multiplied by the UI scale
const (
	MarkerOuterRadius = 20.0
	MarkerInnerRadius = 13.0
	WireRadius        = 3.0
	ToleranceMargin   = 1.2
	WinRadius         = 22.0
	PlayfieldPad      = 10.0
)

// Camera shake (cosmetic)
const (
	StrikeShake = 16.0
	ShakeDecay  = 0.88
	ShakeFloor  = 0.01
)
