package physics

import "github.com/lixenwraith/hotwire/vmath"

// JoystickTarget maps a touch drag to a steering target
// The drag from origin (where the finger landed) is dead-zoned, clamped to the
// profile reach and amplified by its gain, then added to anchor (the marker
// position captured on touch start). Reach and dead zone scale with uiScale
func JoystickTarget(anchor, origin, current vmath.Vec2, p SteeringProfile, uiScale float64) vmath.Vec2 {
	if uiScale <= 0 {
		uiScale = 1
	}
	reach := p.JoystickReach * uiScale
	dead := p.JoystickDeadzone * uiScale

	delta := current.Sub(origin)
	if delta.Len() < dead {
		return anchor
	}
	delta = vmath.ClampMagnitude(delta, reach)
	return anchor.Add(delta.Scale(p.JoystickGain))
}
