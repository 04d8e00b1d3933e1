package render

import (
	"math"

	"github.com/lixenwraith/hotwire/vmath"
	"github.com/lixenwraith/hotwire/wire"
)

// Terminal cells stand in for presentation pixels
const (
	CellWidth  = 8.0
	CellHeight = 16.0
	HUDRows    = 1
)

// Bounds returns the playable area of a w x h cell screen in presentation space
// The HUD rows at the top are excluded; an unusable screen yields an empty rect
func Bounds(w, h int) wire.Rect {
	rows := h - HUDRows
	if w <= 0 || rows <= 0 {
		return wire.Rect{}
	}
	return wire.Rect{
		X: 0,
		Y: HUDRows * CellHeight,
		W: float64(w) * CellWidth,
		H: float64(rows) * CellHeight,
	}
}

// ToCell maps a presentation point onto the cell containing it
func ToCell(p vmath.Vec2) (x, y int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

// CellCenter returns the presentation point at the center of cell (x, y)
func CellCenter(x, y int) vmath.Vec2 {
	return vmath.V((float64(x)+0.5)*CellWidth, (float64(y)+0.5)*CellHeight)
}

// segmentRune picks a box-drawing glyph for a segment direction, corrected for cell aspect
func segmentRune(d vmath.Vec2) rune {
	cx := math.Abs(d.X / CellWidth)
	cy := math.Abs(d.Y / CellHeight)
	switch {
	case cx >= 2*cy:
		return '─'
	case cy >= 2*cx:
		return '│'
	case (d.X > 0) == (d.Y > 0):
		return '╲' // +y is down
	default:
		return '╱'
	}
}
