package vmath

import "math"

// SegmentEpsilon substitutes for the squared length of a degenerate segment
const SegmentEpsilon = 1e-9

// --- Scalar ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates linearly from a to b by t (t is not clamped)
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Dist2 returns squared distance between (ax, ay) and (bx, by)
func Dist2(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// ExpBlend returns the blend factor of a first-order lag with time constant tau over dt
// Used as lerp(current, target, ExpBlend(dt, tau)); tau <= 0 snaps immediately
func ExpBlend(dt, tau float64) float64 {
	if tau <= 0 {
		return 1
	}
	return 1 - math.Exp(-dt/tau)
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// --- Easing ---

// EaseInOutQuad maps t in [0,1] onto a quadratic ease-in-out curve
func EaseInOutQuad(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// --- Randomness ---

// Source yields uniform values in [0, 1)
type Source interface {
	Float64() float64
}

// LCG is a 32-bit linear congruential generator (Numerical Recipes constants)
// Value type: copying an LCG forks the stream, the copy replays the same sequence
type LCG struct {
	state uint32
}

// NewLCG creates a generator seeded with seed
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the state and returns it
func (r *LCG) Next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// Float64 advances the state and returns it scaled into [0, 1)
func (r *LCG) Float64() float64 {
	return float64(r.Next()) / 4294967296.0
}

// Intn returns a value in [0, n) derived from Float64, 0 when n <= 0
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// State returns the current generator state
func (r *LCG) State() uint32 {
	return r.state
}

// Signed returns a value in [-0.5, 0.5) drawn from src
func Signed(src Source) float64 {
	return src.Float64() - 0.5
}

// Coin returns -1 or 1 with equal probability
func Coin(src Source) float64 {
	if src.Float64() < 0.5 {
		return -1
	}
	return 1
}
