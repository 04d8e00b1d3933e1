package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hotwire/vmath"
)

// RGB is an 8-bit color kept independent of the terminal palette
type RGB struct {
	R, G, B uint8
}

// Blend moves c toward src by alpha, clamped to [0,1]
func (c RGB) Blend(src RGB, alpha float64) RGB {
	a := vmath.Clamp(alpha, 0, 1)
	return RGB{
		R: mixChannel(c.R, src.R, a),
		G: mixChannel(c.G, src.G, a),
		B: mixChannel(c.B, src.B, a),
	}
}

func mixChannel(from, to uint8, t float64) uint8 {
	return uint8(math.Round(vmath.Lerp(float64(from), float64(to), t)))
}

// Tcell converts to a true-color tcell color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
