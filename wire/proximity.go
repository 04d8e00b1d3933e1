package wire

import (
	"math"

	"github.com/lixenwraith/hotwire/vmath"
)

// Nearest is the closest point on a polyline to a query point
type Nearest struct {
	Point   vmath.Vec2
	Segment int     // Index of the segment start sample
	T       float64 // Position along the segment, always in [0,1]
	DistSq  float64
}

// Distance returns the Euclidean distance to the polyline
func (n Nearest) Distance() float64 {
	return math.Sqrt(n.DistSq)
}

// Nearest scans every segment and keeps the first minimum-distance candidate
func (pl *Polyline) Nearest(p vmath.Vec2) Nearest {
	switch len(pl.Points) {
	case 0:
		return Nearest{DistSq: math.Inf(1)}
	case 1:
		return Nearest{Point: pl.Points[0], DistSq: p.DistSq(pl.Points[0])}
	}

	best := Nearest{DistSq: math.Inf(1)}
	for i := 0; i < len(pl.Points)-1; i++ {
		c, t, d2 := vmath.ClosestPointOnSegment(p, pl.Points[i], pl.Points[i+1])
		if d2 < best.DistSq {
			best = Nearest{Point: c, Segment: i, T: t, DistSq: d2}
		}
	}
	return best
}

// ProgressAt converts a nearest-point result into arc length along the polyline
func (pl *Polyline) ProgressAt(n Nearest) float64 {
	i := n.Segment
	if i < 0 || i+1 >= len(pl.CumLen) {
		return 0
	}
	segLen := pl.CumLen[i+1] - pl.CumLen[i]
	return pl.CumLen[i] + segLen*n.T
}
