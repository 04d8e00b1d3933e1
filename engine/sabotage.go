package engine

import (
	"time"

	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/physics"
)

// SabotageKind is one sabotage category
type SabotageKind int

const (
	SabotageInvert SabotageKind = iota // Negated acceleration
	SabotageWind                       // Slow sinusoidal push
	SabotageWobble                     // Fast strong push with shake
	SabotagePinch                      // Shrunken tolerance
	sabotageKindCount
)

// String returns the kind name
func (k SabotageKind) String() string {
	switch k {
	case SabotageInvert:
		return "Invert"
	case SabotageWind:
		return "Wind"
	case SabotageWobble:
		return "Wobble"
	case SabotagePinch:
		return "Pinch"
	default:
		return "Unknown"
	}
}

// Text returns the player-facing announcement
func (k SabotageKind) Text() string {
	switch k {
	case SabotageInvert:
		return "Controls inverted. (Sorry.)"
	case SabotageWind:
		return "A mysterious wind pushes you."
	case SabotageWobble:
		return "Wobble mode: enabled (unfortunately)."
	case SabotagePinch:
		return "Tolerance shrinks. Breathe carefully."
	default:
		return "Something feels… wrong."
	}
}

// PickSabotage maps a uniform roll in [0,1) onto the cumulative kind bands
func PickSabotage(roll float64) SabotageKind {
	switch {
	case roll < parameter.SabotageBandInvert:
		return SabotageInvert
	case roll < parameter.SabotageBandWind:
		return SabotageWind
	case roll < parameter.SabotageBandWobble:
		return SabotageWobble
	default:
		return SabotagePinch
	}
}

// SabotageSet is a bitset of currently active kinds
type SabotageSet uint8

// Has reports whether kind is active
func (s SabotageSet) Has(kind SabotageKind) bool {
	return s&(1<<kind) != 0
}

// Modifiers converts the acceleration-affecting kinds for the steering controller
func (s SabotageSet) Modifiers() physics.Modifiers {
	return physics.Modifiers{
		Invert: s.Has(SabotageInvert),
		Wind:   s.Has(SabotageWind),
		Wobble: s.Has(SabotageWobble),
	}
}

// Sabotage is the active-until table, one deadline per kind
// Kinds are independent: overlapping deadlines stack
type Sabotage struct {
	until [sabotageKindCount]time.Time
}

// Activate sets kind active until the given time
func (s *Sabotage) Activate(kind SabotageKind, until time.Time) {
	if kind < 0 || kind >= sabotageKindCount {
		return
	}
	s.until[kind] = until
}

// Active reports whether kind is active at now
func (s *Sabotage) Active(kind SabotageKind, now time.Time) bool {
	if kind < 0 || kind >= sabotageKindCount {
		return false
	}
	return now.Before(s.until[kind])
}

// Set returns all kinds active at now
func (s *Sabotage) Set(now time.Time) SabotageSet {
	var set SabotageSet
	for k := SabotageKind(0); k < sabotageKindCount; k++ {
		if s.Active(k, now) {
			set |= 1 << k
		}
	}
	return set
}

// Clear deactivates every kind
func (s *Sabotage) Clear() {
	s.until = [sabotageKindCount]time.Time{}
}

// String lists active kinds joined by '+', "None" when empty
func (s SabotageSet) String() string {
	out := ""
	for k := SabotageKind(0); k < sabotageKindCount; k++ {
		if !s.Has(k) {
			continue
		}
		if out != "" {
			out += "+"
		}
		out += k.String()
	}
	if out == "" {
		return "None"
	}
	return out
}
