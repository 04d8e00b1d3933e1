package wire

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/vmath"
)

// Profile selects the device class a course is built for
// It is chosen once at generation time and travels with the Path
type Profile int

const (
	Desktop Profile = iota // Spline sampled, loops and self-crossings allowed
	Mobile                 // Linear sampled, x never decreases
)

// String returns the profile name
func (p Profile) String() string {
	switch p {
	case Desktop:
		return "desktop"
	case Mobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// ParseProfile resolves a profile name (case-insensitive)
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desktop", "":
		return Desktop, nil
	case "mobile", "touch":
		return Mobile, nil
	}
	return Desktop, fmt.Errorf("%w: %q", ErrUnknownProfile, s)
}

// Valid reports whether p is a known profile
func (p Profile) Valid() bool {
	return p == Desktop || p == Mobile
}

// Monotone reports whether paths of this profile must keep x non-decreasing
func (p Profile) Monotone() bool {
	return p == Mobile
}

// Bounds is the valid range of normalized control point coordinates
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Clamp returns pt limited to the bounds
func (b Bounds) Clamp(pt vmath.Vec2) vmath.Vec2 {
	return vmath.ClampRect(pt, b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Contains reports whether pt lies within the bounds
func (b Bounds) Contains(pt vmath.Vec2) bool {
	return pt.X >= b.MinX && pt.X <= b.MaxX && pt.Y >= b.MinY && pt.Y <= b.MaxY
}

// Bounds returns the coordinate range control points are clamped into
func (p Profile) Bounds() Bounds {
	if p == Mobile {
		return Bounds{
			MinX: parameter.MobileWireStartX,
			MinY: parameter.MobileWireMinY,
			MaxX: parameter.MobileWireEndX,
			MaxY: parameter.MobileWireMaxY,
		}
	}
	return Bounds{
		MinX: parameter.DesktopWireMin,
		MinY: parameter.DesktopWireMin,
		MaxX: parameter.DesktopWireMax,
		MaxY: parameter.DesktopWireMax,
	}
}

// strategy bundles the per-profile algorithms: generation, sampling and morph perturbation
type strategy interface {
	generate(rnd *vmath.LCG) []vmath.Vec2
	sample(cps []vmath.Vec2, out []vmath.Vec2) []vmath.Vec2
	perturb(pts []vmath.Vec2, rnd vmath.Source)
}

func strategyFor(p Profile) strategy {
	if p == Mobile {
		return mobileStrategy{}
	}
	return desktopStrategy{}
}
