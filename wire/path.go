package wire

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/hotwire/vmath"
)

// Sentinel errors
var (
	ErrUnknownProfile  = errors.New("unknown wire profile")
	ErrPathTooShort    = errors.New("path needs at least two control points")
	ErrNonMonotonic    = errors.New("mobile path x must be non-decreasing")
	ErrPointOutOfRange = errors.New("control point outside profile bounds")
	ErrMorphDuration   = errors.New("morph duration must be positive")
	ErrMorphMismatch   = errors.New("morph endpoints differ in point count")
)

// boundsSlack absorbs float noise when checking clamped coordinates
const boundsSlack = 1e-9

// Path is an ordered sequence of normalized control points
// Points are never reordered; morphs mutate them in place
type Path struct {
	Profile Profile
	Points  []vmath.Vec2
}

// Len returns the control point count
func (p Path) Len() int { return len(p.Points) }

// Clone returns a deep copy
func (p Path) Clone() Path {
	pts := make([]vmath.Vec2, len(p.Points))
	copy(pts, p.Points)
	return Path{Profile: p.Profile, Points: pts}
}

// ClampPoints re-clamps every control point into the profile bounds
func (p Path) ClampPoints() {
	b := p.Profile.Bounds()
	for i := range p.Points {
		p.Points[i] = b.Clamp(p.Points[i])
	}
}

// Validate rejects topologies the simulation cannot run on
func (p Path) Validate() error {
	if !p.Profile.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownProfile, int(p.Profile))
	}
	if len(p.Points) < 2 {
		return fmt.Errorf("%w: got %d", ErrPathTooShort, len(p.Points))
	}

	b := p.Profile.Bounds()
	slack := Bounds{b.MinX - boundsSlack, b.MinY - boundsSlack, b.MaxX + boundsSlack, b.MaxY + boundsSlack}
	for i, pt := range p.Points {
		if !vmath.IsFinite(pt.X) || !vmath.IsFinite(pt.Y) || !slack.Contains(pt) {
			return fmt.Errorf("%w: point %d = (%g, %g)", ErrPointOutOfRange, i, pt.X, pt.Y)
		}
		if p.Profile.Monotone() && i > 0 && pt.X < p.Points[i-1].X {
			return fmt.Errorf("%w: x[%d]=%g < x[%d]=%g", ErrNonMonotonic, i, pt.X, i-1, p.Points[i-1].X)
		}
	}
	return nil
}
