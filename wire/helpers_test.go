package wire

import "github.com/lixenwraith/hotwire/vmath"

// pts builds a point slice from flat x, y pairs
func pts(xy ...float64) []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, vmath.V(xy[i], xy[i+1]))
	}
	return out
}
