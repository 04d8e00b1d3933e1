package wire

import (
	"math"

	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/vmath"
)

// Generate builds the course for seed and profile
// Output is fully deterministic: identical arguments yield identical points
func Generate(seed uint32, profile Profile) (Path, error) {
	if !profile.Valid() {
		return Path{}, ErrUnknownProfile
	}

	rnd := vmath.NewLCG(seed)
	path := Path{
		Profile: profile,
		Points:  strategyFor(profile).generate(rnd),
	}
	if err := path.Validate(); err != nil {
		return Path{}, err
	}
	return path, nil
}

// --- Desktop ---

type desktopStrategy struct{}

// generate runs a biased random walk: mostly forward, periodic gnarly back-steps,
// periodic vertical knots, then splices closed loops at fixed indices
func (desktopStrategy) generate(rnd *vmath.LCG) []vmath.Vec2 {
	b := Desktop.Bounds()
	n := parameter.DesktopWirePoints
	pts := make([]vmath.Vec2, 0, n+len(parameter.DesktopLoopIndices)*parameter.DesktopLoopPoints)

	x, y := parameter.DesktopWireStartX, parameter.DesktopWireStartY
	pts = append(pts, vmath.V(x, y))

	for i := 1; i < n; i++ {
		forward := parameter.DesktopForwardMin + rnd.Float64()*parameter.DesktopForwardSpan

		backChance := parameter.DesktopBackChance
		if i%parameter.DesktopBackPeriod == 0 {
			backChance = parameter.DesktopBackChanceGnarly
		}
		dx := forward
		if rnd.Float64() < backChance {
			dx = -forward * (parameter.DesktopBackScaleMin + rnd.Float64()*parameter.DesktopBackScaleSpan)
		}

		wander := vmath.Signed(rnd)
		dy := wander * (parameter.DesktopLateralMin + rnd.Float64()*parameter.DesktopLateralSpan)

		x = vmath.Clamp(x+dx, b.MinX, b.MaxX)
		y = vmath.Clamp(y+dy, b.MinY, b.MaxY)

		if i%parameter.DesktopKnotPeriod == 0 {
			dir := vmath.Coin(rnd)
			jump := parameter.DesktopKnotJumpMin + rnd.Float64()*parameter.DesktopKnotJumpSpan
			y = vmath.Clamp(y+dir*jump, b.MinY, b.MaxY)
		}
		pts = append(pts, vmath.V(x, y))
	}
	pts[len(pts)-1] = vmath.V(parameter.DesktopWireEndX, parameter.DesktopWireEndY)

	// Loop indices refer to the growing slice, earlier splices shift later centers
	for _, idx := range parameter.DesktopLoopIndices {
		if idx <= 2 || idx >= len(pts)-3 {
			continue
		}
		pts = spliceLoop(pts, idx, rnd, b)
	}
	return pts
}

// spliceLoop inserts a jittered closed circle of points centered on pts[idx] before idx
func spliceLoop(pts []vmath.Vec2, idx int, rnd *vmath.LCG, b Bounds) []vmath.Vec2 {
	c := pts[idx]
	r := parameter.DesktopLoopRadius
	steps := parameter.DesktopLoopPoints

	loop := make([]vmath.Vec2, steps)
	for k := 0; k < steps; k++ {
		a := float64(k) / float64(steps) * math.Pi * 2
		jx := parameter.DesktopLoopJitterMin + rnd.Float64()*parameter.DesktopLoopJitterSpan
		px := c.X + math.Cos(a)*r*jx
		jy := parameter.DesktopLoopJitterMin + rnd.Float64()*parameter.DesktopLoopJitterSpan
		py := c.Y + math.Sin(a)*r*jy
		loop[k] = b.Clamp(vmath.V(px, py))
	}

	out := make([]vmath.Vec2, 0, len(pts)+steps)
	out = append(out, pts[:idx]...)
	out = append(out, loop...)
	return append(out, pts[idx:]...)
}

// --- Mobile ---

type mobileStrategy struct{}

// generate walks x linearly across the field and lets y wander as damped noise
// Every perturbation is y-only so the course stays a function of x
func (mobileStrategy) generate(rnd *vmath.LCG) []vmath.Vec2 {
	b := Mobile.Bounds()
	n := parameter.MobileWirePoints
	pts := make([]vmath.Vec2, 0, n)

	y := parameter.MobileWireStartY
	vy := 0.0

	for i := 0; i < n; i++ {
		x := vmath.Lerp(parameter.MobileWireStartX, parameter.MobileWireEndX, float64(i)/float64(n-1))

		acc := vmath.Signed(rnd) * parameter.MobileWanderAccel
		vy = (vy + acc) * parameter.MobileWanderDamping
		y += vy

		if i%parameter.MobileSpikePeriod == 0 && i > 0 && i < n-1 {
			dir := vmath.Coin(rnd)
			y += dir * (parameter.MobileSpikeJumpMin + rnd.Float64()*parameter.MobileSpikeJumpSpan)
		}

		y = vmath.Clamp(y, b.MinY, b.MaxY)
		pts = append(pts, vmath.V(x, y))
	}

	knots := [...]int{
		int(math.Floor(float64(n) * parameter.MobileKnotA)),
		int(math.Floor(float64(n) * parameter.MobileKnotB)),
	}
	for _, k := range knots {
		if k < 3 || k > n-4 {
			continue
		}
		base := pts[k].Y
		pts[k-1].Y = vmath.Clamp(base+vmath.Signed(rnd)*parameter.MobileKnotSideSpan, b.MinY, b.MaxY)
		pts[k].Y = vmath.Clamp(base+vmath.Signed(rnd)*parameter.MobileKnotCenterSpan, b.MinY, b.MaxY)
		pts[k+1].Y = vmath.Clamp(base+vmath.Signed(rnd)*parameter.MobileKnotSideSpan, b.MinY, b.MaxY)
	}

	pts[0].Y = vmath.Clamp(pts[0].Y, parameter.MobileEndpointMinY, parameter.MobileEndpointMaxY)
	pts[n-1].Y = vmath.Clamp(pts[n-1].Y, parameter.MobileEndpointMinY, parameter.MobileEndpointMaxY)
	return pts
}
