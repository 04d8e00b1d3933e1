package parameter

import "time"

// Hazard scheduling, mobile intervals are longer
const (
	DesktopSabotageBase   = 8000 * time.Millisecond
	DesktopSabotageJitter = 6500 * time.Millisecond
	MobileSabotageBase    = 11000 * time.Millisecond
	MobileSabotageJitter  = 9000 * time.Millisecond

	DesktopMorphBase   = 24000 * time.Millisecond
	DesktopMorphJitter = 22000 * time.Millisecond
	MobileMorphBase    = 32000 * time.Millisecond
	MobileMorphJitter  = 28000 * time.Millisecond
)

// Sabotage effects
const (
	SabotageDurationBase   = 1200 * time.Millisecond
	SabotageDurationJitter = 1500 * time.Millisecond

	// Cumulative roll bands: invert, wind, wobble, remainder is pinch
	SabotageBandInvert = 0.25
	SabotageBandWind   = 0.50
	SabotageBandWobble = 0.72

	// SabotageShakeChance is the independent chance of a shake nudge on trigger
	SabotageShakeChance = 0.18
	SabotageShake       = 8.0

	// PinchShrink multiplies the allowed tolerance while pinch is active
	PinchShrink = 0.72
)

// Wire morphing
const (
	MorphDuration = 950 * time.Millisecond

	// RecatchWindow is the grace period after a morph to reacquire the wire
	RecatchWindow = 1600 * time.Millisecond

	MorphShake = 14.0

	// MorphFirstIndex keeps the first points (and the last ones, symmetrically) fixed
	MorphFirstIndex = 2

	DesktopMorphCountMin  = 6
	DesktopMorphCountSpan = 7
	MobileMorphCountMin   = 3
	MobileMorphCountSpan  = 3

	DesktopMorphSpanX = 0.14
	DesktopMorphSpanY = 0.18
	MobileMorphSpanY  = 0.18
)
