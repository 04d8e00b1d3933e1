package physics

import (
	"math"

	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/vmath"
)

// Modifiers are the sabotage effects that alter acceleration
// Pinch is absent: it shrinks collision tolerance, not control
type Modifiers struct {
	Invert bool
	Wind   bool
	Wobble bool
}

// StepInfo reports what the controller applied this step
type StepInfo struct {
	Accel vmath.Vec2 // Final acceleration after lag and modifiers
	Shake float64    // Requested camera shake floor, 0 when none
}

// Controller turns input snapshots into marker motion
// Owns the smoothed pointer target and the lag-filtered acceleration
type Controller struct {
	Profile SteeringProfile

	raw      vmath.Vec2 // Latest pointer target
	smoothed vmath.Vec2 // Exponentially smoothed target
	lag      vmath.Vec2 // Lag-filtered acceleration
	jitter   vmath.Source
}

// NewController creates a controller; jitter drives directional-mode shake
func NewController(profile SteeringProfile, jitter vmath.Source) *Controller {
	return &Controller{Profile: profile, jitter: jitter}
}

// Target returns the raw and smoothed pointer targets
func (c *Controller) Target() (raw, smoothed vmath.Vec2) {
	return c.raw, c.smoothed
}

// Aim sets both raw and smoothed targets so motion starts without a jump
func (c *Controller) Aim(target vmath.Vec2) {
	c.raw = target
	c.smoothed = target
}

// Freeze pins the target to the marker and clears the lag filter
// Velocity is the caller's concern
func (c *Controller) Freeze(m *Marker) {
	c.Aim(m.Pos)
	c.lag = vmath.Vec2{}
}

// Step consumes one input snapshot
// While disabled only pointer pre-aim is applied and the marker is not moved
// t is simulation time in milliseconds, driving the sabotage oscillators
func (c *Controller) Step(dt, t float64, in Input, mods Modifiers, enabled bool, m *Marker, area Box) StepInfo {
	if in.Release {
		c.Aim(m.Pos)
	} else if in.Mode == ModePointer && in.HasTarget {
		c.raw = area.Clamp(in.Target)
		if !enabled {
			c.smoothed = c.raw
		}
	}
	if !enabled {
		return StepInfo{}
	}

	var accel vmath.Vec2
	if in.Mode == ModePointer {
		accel = c.pointerAccel(dt, m)
	} else {
		accel = c.directionalAccel(in.Keys)
	}

	blend := vmath.ExpBlend(dt, c.Profile.Lag)
	c.lag = c.lag.Lerp(accel, blend)

	info := applyModifiers(c.lag, t, mods)

	Integrate(m, info.Accel, dt, c.Profile.Drag, c.Profile.MaxSpeed)
	ClampToRect(m, area)
	return info
}

// pointerAccel steers toward the smoothed target with an arrive ramp
func (c *Controller) pointerAccel(dt float64, m *Marker) vmath.Vec2 {
	c.smoothed = c.smoothed.Lerp(c.raw, vmath.ExpBlend(dt, c.Profile.TargetSmooth))

	delta := c.smoothed.Sub(m.Pos)
	dist := delta.Len()
	if dist == 0 {
		dist = 1
	}

	ramp := vmath.Clamp(dist/c.Profile.ArriveRadius, 0, 1)
	desired := delta.Scale(c.Profile.MaxSpeed * ramp / dist)
	return desired.Sub(m.Vel).Scale(c.Profile.SteeringGain)
}

// directionalAccel applies fixed thrust along held keys plus per-axis jitter
func (c *Controller) directionalAccel(keys Direction) vmath.Vec2 {
	accel := keys.Vector().Scale(c.Profile.KeyAccel)
	if c.jitter != nil {
		accel.X += vmath.Signed(c.jitter) * c.Profile.KeyJitter
		accel.Y += vmath.Signed(c.jitter) * c.Profile.KeyJitter
	}
	return accel
}

// applyModifiers folds active sabotage into the lagged acceleration
func applyModifiers(accel vmath.Vec2, t float64, mods Modifiers) StepInfo {
	info := StepInfo{Accel: accel}
	if mods.Invert {
		info.Accel = info.Accel.Neg()
	}
	if mods.Wind {
		info.Accel = info.Accel.Add(WindForce(t))
	}
	if mods.Wobble {
		info.Accel = info.Accel.Add(WobbleForce(t))
		info.Shake = parameter.WobbleShake
	}
	return info
}

// WindForce is a slow two-frequency push
func WindForce(t float64) vmath.Vec2 {
	w := t * parameter.WindOmega
	return vmath.V(
		math.Sin(w)*parameter.WindAmplitude,
		math.Cos(w*parameter.WindOmegaYRatio)*parameter.WindAmplitude,
	)
}

// WobbleForce is a faster, stronger two-frequency push
func WobbleForce(t float64) vmath.Vec2 {
	w := t * parameter.WobbleOmega
	return vmath.V(
		math.Sin(w*parameter.WobbleOmegaX)*parameter.WobbleAmplitude,
		math.Cos(w*parameter.WobbleOmegaY)*parameter.WobbleAmplitude,
	)
}
