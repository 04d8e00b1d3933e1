package wire

import (
	"fmt"
	"time"

	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/vmath"
)

// Morph is an in-flight eased interpolation between two control point snapshots
type Morph struct {
	From     Path
	To       Path
	Start    time.Time
	Duration time.Duration
}

// NewMorph snapshots both endpoints and validates the transition
func NewMorph(from, to Path, start time.Time, duration time.Duration) (*Morph, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrMorphDuration, duration)
	}
	if from.Len() != to.Len() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrMorphMismatch, from.Len(), to.Len())
	}
	return &Morph{
		From:     from.Clone(),
		To:       to.Clone(),
		Start:    start,
		Duration: duration,
	}, nil
}

// Progress returns raw transition progress clamped to [0,1]
func (m *Morph) Progress(now time.Time) float64 {
	return vmath.Clamp(float64(now.Sub(m.Start))/float64(m.Duration), 0, 1)
}

// Eased returns progress mapped through the quadratic ease-in-out curve
func (m *Morph) Eased(now time.Time) float64 {
	return vmath.EaseInOutQuad(m.Progress(now))
}

// Done reports whether the transition has reached its target
func (m *Morph) Done(now time.Time) bool {
	return m.Progress(now) >= 1
}

// Apply writes the eased interpolation into dst and reports completion
// dst must have the same point count as the endpoints
func (m *Morph) Apply(now time.Time, dst Path) bool {
	e := m.Eased(now)
	for i := range dst.Points {
		dst.Points[i] = m.From.Points[i].Lerp(m.To.Points[i], e)
	}
	return m.Done(now)
}

// Perturb returns a copy of path with a random subset of interior points displaced
// per the profile rule; the input is left untouched
func Perturb(path Path, rnd vmath.Source) Path {
	out := path.Clone()
	strategyFor(path.Profile).perturb(out.Points, rnd)
	return out
}

// morphIndex picks an interior index, the first and last two points stay fixed
func morphIndex(n int, rnd vmath.Source) (int, bool) {
	span := n - 2*parameter.MorphFirstIndex
	if span <= 0 {
		return 0, false
	}
	return parameter.MorphFirstIndex + int(rnd.Float64()*float64(span)), true
}

// perturb moves both axes, loops may tighten or open
func (desktopStrategy) perturb(pts []vmath.Vec2, rnd vmath.Source) {
	b := Desktop.Bounds()
	k := parameter.DesktopMorphCountMin + int(rnd.Float64()*parameter.DesktopMorphCountSpan)
	for i := 0; i < k; i++ {
		idx, ok := morphIndex(len(pts), rnd)
		if !ok {
			return
		}
		dx := vmath.Signed(rnd) * parameter.DesktopMorphSpanX
		dy := vmath.Signed(rnd) * parameter.DesktopMorphSpanY
		pts[idx] = b.Clamp(pts[idx].Add(vmath.V(dx, dy)))
	}
}

// perturb moves y only, keeping the course monotone in x
func (mobileStrategy) perturb(pts []vmath.Vec2, rnd vmath.Source) {
	b := Mobile.Bounds()
	k := parameter.MobileMorphCountMin + int(rnd.Float64()*parameter.MobileMorphCountSpan)
	for i := 0; i < k; i++ {
		idx, ok := morphIndex(len(pts), rnd)
		if !ok {
			return
		}
		pts[idx].Y = vmath.Clamp(pts[idx].Y+vmath.Signed(rnd)*parameter.MobileMorphSpanY, b.MinY, b.MaxY)
	}
}
