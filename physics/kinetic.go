package physics

import (
	"math"

	"github.com/lixenwraith/hotwire/vmath"
)

// Marker is the player's ring
type Marker struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	OuterR float64 // Visual ring
	InnerR float64 // Tolerance boundary
}

// Spawn places the marker at pos at rest
func (m *Marker) Spawn(pos vmath.Vec2) {
	m.Pos = pos
	m.Vel = vmath.Vec2{}
}

// Box is an axis-aligned clamp region in presentation space
type Box struct {
	Min, Max vmath.Vec2
}

// Clamp returns p limited to the box
func (b Box) Clamp(p vmath.Vec2) vmath.Vec2 {
	return vmath.ClampRect(p, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

// Integrate performs semi-implicit integration with exponential drag:
// v += a*dt; v *= exp(-drag*dt); |v| <= maxSpeed; p += v*dt
func Integrate(m *Marker, accel vmath.Vec2, dt, drag, maxSpeed float64) {
	m.Vel = m.Vel.Add(accel.Scale(dt))
	m.Vel = m.Vel.Scale(math.Exp(-drag * dt))
	CapSpeed(m, maxSpeed)
	m.Pos = m.Pos.Add(m.Vel.Scale(dt))
}

// CapSpeed clamps velocity magnitude, direction is preserved
func CapSpeed(m *Marker, maxSpeed float64) {
	m.Vel = vmath.ClampMagnitude(m.Vel, maxSpeed)
}

// ClampToRect keeps the marker inside the playable box
// Velocity is kept, the marker slides along the edge
func ClampToRect(m *Marker, b Box) {
	m.Pos = b.Clamp(m.Pos)
}
