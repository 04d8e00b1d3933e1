package vmath

import "math"

// Vec2 is a point or direction in presentation or normalized space
type Vec2 struct {
	X, Y float64
}

// V returns Vec2{x, y}
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2       { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2       { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(k float64) Vec2  { return Vec2{a.X * k, a.Y * k} }
func (a Vec2) Dot(b Vec2) float64    { return a.X*b.X + a.Y*b.Y }
func (a Vec2) LenSq() float64        { return a.X*a.X + a.Y*a.Y }
func (a Vec2) Len() float64          { return math.Hypot(a.X, a.Y) }
func (a Vec2) DistSq(b Vec2) float64 { return Dist2(a.X, a.Y, b.X, b.Y) }
func (a Vec2) Dist(b Vec2) float64   { return math.Sqrt(a.DistSq(b)) }
func (a Vec2) Neg() Vec2             { return Vec2{-a.X, -a.Y} }
func (a Vec2) IsZero() bool          { return a.X == 0 && a.Y == 0 }
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// Normalize2D returns the unit vector of a, zero-safe
func Normalize2D(a Vec2) Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// ClampMagnitude limits a to maxMag while preserving direction
// Returns a unchanged if its magnitude <= maxMag
func ClampMagnitude(a Vec2, maxMag float64) Vec2 {
	l := a.Len()
	if l <= maxMag || l == 0 {
		return a
	}
	return a.Scale(maxMag / l)
}

// ClampRect limits a to the axis-aligned box [minX, maxX] x [minY, maxY]
func ClampRect(a Vec2, minX, minY, maxX, maxY float64) Vec2 {
	return Vec2{Clamp(a.X, minX, maxX), Clamp(a.Y, minY, maxY)}
}
