package vmath

// CatmullRom evaluates the uniform Catmull-Rom segment between p1 and p2 at t in [0,1]
// p0 and p3 act as tangent guides
func CatmullRom(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t
	return Vec2{
		X: catmullRomAxis(p0.X, p1.X, p2.X, p3.X, t, t2, t3),
		Y: catmullRomAxis(p0.Y, p1.Y, p2.Y, p3.Y, t, t2, t3),
	}
}

func catmullRomAxis(a, b, c, d, t, t2, t3 float64) float64 {
	return 0.5 * ((2 * b) +
		(-a+c)*t +
		(2*a-5*b+4*c-d)*t2 +
		(-a+3*b-3*c+d)*t3)
}

// ClosestPointOnSegment projects p onto segment ab
// Returns the closest point, the clamped parameter t in [0,1] and the squared distance
// Zero-length segments use SegmentEpsilon in place of the squared length
func ClosestPointOnSegment(p, a, b Vec2) (c Vec2, t, d2 float64) {
	ab := b.Sub(a)
	ap := p.Sub(a)
	ab2 := ab.LenSq()
	if ab2 == 0 {
		ab2 = SegmentEpsilon
	}
	t = Clamp(ap.Dot(ab)/ab2, 0, 1)
	c = a.Add(ab.Scale(t))
	return c, t, p.DistSq(c)
}
