package wire

import (
	"math"

	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/vmath"
)

// Rect is the playable area in presentation space
type Rect struct {
	X, Y, W, H float64
}

// Valid reports whether the rect has a positive area
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0 && vmath.IsFinite(r.X) && vmath.IsFinite(r.Y)
}

// ToPresentation maps a normalized point into the rect
func (r Rect) ToPresentation(p vmath.Vec2) vmath.Vec2 {
	return vmath.V(r.X+p.X*r.W, r.Y+p.Y*r.H)
}

// Clamp limits p to the rect shrunk by pad on every side
func (r Rect) Clamp(p vmath.Vec2, pad float64) vmath.Vec2 {
	return vmath.ClampRect(p, r.X+pad, r.Y+pad, r.X+r.W-pad, r.Y+r.H-pad)
}

// Polyline is the dense sampling of a path with its cumulative arc-length table
// Read-only outside the sampler
type Polyline struct {
	Points []vmath.Vec2 // Presentation space
	CumLen []float64    // CumLen[0] = 0, CumLen[len-1] = Total, non-decreasing
	Total  float64
}

// Start returns the first sample
func (pl *Polyline) Start() vmath.Vec2 {
	if len(pl.Points) == 0 {
		return vmath.Vec2{}
	}
	return pl.Points[0]
}

// End returns the last sample
func (pl *Polyline) End() vmath.Vec2 {
	if len(pl.Points) == 0 {
		return vmath.Vec2{}
	}
	return pl.Points[len(pl.Points)-1]
}

// Sampler rebuilds the dense polyline from control points every step
type Sampler struct {
	Bounds Rect

	scratch []vmath.Vec2
}

// NewSampler creates a sampler targeting the given playable area
func NewSampler(bounds Rect) *Sampler {
	return &Sampler{Bounds: bounds}
}

// Rebuild samples path per its profile and returns a fresh polyline
// The returned polyline is never mutated afterwards
func (s *Sampler) Rebuild(path Path) *Polyline {
	s.scratch = strategyFor(path.Profile).sample(path.Points, s.scratch[:0])

	n := len(s.scratch)
	pl := &Polyline{
		Points: make([]vmath.Vec2, n),
		CumLen: make([]float64, n),
	}
	total := 0.0
	for i, p := range s.scratch {
		pl.Points[i] = s.Bounds.ToPresentation(p)
		if i > 0 {
			total += pl.Points[i].Dist(pl.Points[i-1])
		}
		pl.CumLen[i] = total
	}
	pl.Total = total
	return pl
}

// WaveOffset returns the cosmetic lateral offset of sample i for renderers
// Never applied to Polyline.Points; collision uses the undistorted samples
func WaveOffset(i int, phase, amplitude float64) float64 {
	return amplitude * math.Sin(phase) * math.Sin(float64(i)*parameter.WaveFrequency)
}

// WaveParams returns the per-frame phase step and amplitude of the cosmetic wave
func (p Profile) WaveParams() (speed, amplitude float64) {
	if p == Mobile {
		return parameter.MobileWaveSpeed, parameter.MobileWaveAmplitude
	}
	return parameter.DesktopWaveSpeed, parameter.DesktopWaveAmplitude
}

// sample interpolates each control segment with a Catmull-Rom spline,
// neighbours clamped at the ends act as tangent guides
func (desktopStrategy) sample(cps []vmath.Vec2, out []vmath.Vec2) []vmath.Vec2 {
	if len(cps) == 0 {
		return out
	}
	last := len(cps) - 1
	steps := parameter.DesktopSegmentSamples
	for i := 0; i < last; i++ {
		p0 := cps[max(0, i-1)]
		p1 := cps[i]
		p2 := cps[i+1]
		p3 := cps[min(last, i+2)]
		for j := 0; j < steps; j++ {
			out = append(out, vmath.CatmullRom(p0, p1, p2, p3, float64(j)/float64(steps)))
		}
	}
	return append(out, cps[last])
}

// sample interpolates linearly, spline overshoot could cross a monotone course
func (mobileStrategy) sample(cps []vmath.Vec2, out []vmath.Vec2) []vmath.Vec2 {
	if len(cps) == 0 {
		return out
	}
	last := len(cps) - 1
	steps := parameter.MobileSegmentSamples
	for i := 0; i < last; i++ {
		a, b := cps[i], cps[i+1]
		for j := 0; j < steps; j++ {
			out = append(out, a.Lerp(b, float64(j)/float64(steps)))
		}
	}
	return append(out, cps[last])
}
