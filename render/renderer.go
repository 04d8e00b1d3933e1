package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hotwire/engine"
	"github.com/lixenwraith/hotwire/physics"
	"github.com/lixenwraith/hotwire/vmath"
	"github.com/lixenwraith/hotwire/wire"
	"github.com/mattn/go-runewidth"
)

const (
	progressBarWidth = 12
	countdownHint    = "Controls enable at 0. Don't touch anything."
	idleHint         = "Enter/Space start  Esc pause  M mode  R reset  Q quit"
)

// HUD carries frontend state that is not part of the simulation result
type HUD struct {
	Mode  physics.ControlMode
	Debug []string // Overlay lines, bottom-left
}

// Renderer draws simulation results onto a tcell screen
type Renderer struct {
	screen tcell.Screen

	waveSpeed, waveAmp float64
	wavePhase          float64

	rnd    *vmath.LCG // Shake jitter, cosmetic only
	shakeX int
	shakeY int
	width  int
	height int
	bg     tcell.Style
}

// NewRenderer creates a renderer for the given profile's wire animation
func NewRenderer(screen tcell.Screen, profile wire.Profile) *Renderer {
	speed, amp := profile.WaveParams()
	return &Renderer{
		screen:    screen,
		waveSpeed: speed,
		waveAmp:   amp,
		rnd:       vmath.NewLCG(uint32(time.Now().UnixNano())),
		bg:        tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(RgbText.Tcell()),
	}
}

// ShakeOffset returns the cell offset applied to the play area in the last frame
func (r *Renderer) ShakeOffset() (dx, dy int) {
	return r.shakeX, r.shakeY
}

// Draw renders one frame
func (r *Renderer) Draw(res engine.StepResult, hud HUD) {
	r.width, r.height = r.screen.Size()
	r.screen.Fill(' ', r.bg)

	r.wavePhase += r.waveSpeed
	r.updateShake(res.Shake)

	if res.Polyline != nil {
		r.drawWire(res.Polyline)
		r.drawPads(res.Polyline)
	}
	r.drawMarker(res)

	switch res.Phase {
	case engine.PhaseCountdown:
		r.drawCountdown(res.CountdownLeft)
	case engine.PhaseIdle:
		r.drawBanner(res.Text, idleHint, RgbText)
	case engine.PhaseOver:
		r.drawBanner("GAME OVER", "R to restart, Q to quit", RgbDanger)
	case engine.PhaseWon:
		r.drawBanner(fmt.Sprintf("CLEAN RUN in %.2fs", res.Elapsed.Seconds()), "R to play again", RgbStartPad)
	}

	r.drawHUD(res, hud)
	r.drawDebug(hud.Debug)
	r.screen.Show()
}

// updateShake draws a fresh random offset scaled by intensity in presentation units
func (r *Renderer) updateShake(intensity float64) {
	r.shakeX, r.shakeY = 0, 0
	if intensity <= 0 {
		return
	}
	ox := vmath.Signed(r.rnd) * intensity
	oy := vmath.Signed(r.rnd) * intensity
	r.shakeX = int(math.Round(ox / CellWidth))
	r.shakeY = int(math.Round(oy / CellHeight))
}

// playCell maps a presentation point to a shaken screen cell
func (r *Renderer) playCell(p vmath.Vec2) (x, y int) {
	x, y = ToCell(p)
	return x + r.shakeX, y + r.shakeY
}

// set writes a cell inside the play area, below the HUD
func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < HUDRows || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawWire plots every segment with the cosmetic wave applied
func (r *Renderer) drawWire(pl *wire.Polyline) {
	style := r.bg.
		Foreground(RgbBackground.Blend(RgbWire, wireCoreAlpha).Tcell()).
		Background(RgbBackground.Blend(RgbWire, wireGlowAlpha).Tcell())

	wave := func(i int) vmath.Vec2 {
		p := pl.Points[i]
		p.Y += wire.WaveOffset(i, r.wavePhase, r.waveAmp)
		return p
	}

	for i := 1; i < len(pl.Points); i++ {
		a, b := wave(i-1), wave(i)
		d := b.Sub(a)
		ch := segmentRune(d)

		steps := int(math.Ceil(d.Len()/(CellWidth/2))) + 1
		for s := 0; s <= steps; s++ {
			x, y := r.playCell(a.Lerp(b, float64(s)/float64(steps)))
			r.set(x, y, ch, style)
		}
	}
}

// drawPads marks the start and end of the wire
func (r *Renderer) drawPads(pl *wire.Polyline) {
	if len(pl.Points) == 0 {
		return
	}
	sx, sy := r.playCell(pl.Start())
	r.set(sx, sy, 'S', r.bg.Background(RgbStartPad.Tcell()).Foreground(RgbStatusText.Tcell()).Bold(true))

	ex, ey := r.playCell(pl.End())
	r.set(ex, ey, 'E', r.bg.Background(RgbEndPad.Tcell()).Foreground(RgbStatusText.Tcell()).Bold(true))
}

// drawMarker tints the ring disc and marks the center and the nearest wire point
func (r *Renderer) drawMarker(res engine.StepResult) {
	m := res.Marker
	ring := DangerColor(res.Distance, res.Allowed)

	// Ring disc: tint backgrounds, keep whatever glyph is underneath
	minX, minY := ToCell(m.Pos.Sub(vmath.V(m.OuterR, m.OuterR)))
	maxX, maxY := ToCell(m.Pos.Add(vmath.V(m.OuterR, m.OuterR)))
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			d := CellCenter(cx, cy).Dist(m.Pos)
			if d > m.OuterR {
				continue
			}
			x, y := cx+r.shakeX, cy+r.shakeY
			if x < 0 || x >= r.width || y < HUDRows || y >= r.height {
				continue
			}
			ch, _, style, _ := r.screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			base := RgbBackground
			if bg != tcell.ColorDefault {
				cr, cg, cb := bg.RGB()
				base = RGB{uint8(cr), uint8(cg), uint8(cb)}
			}
			alpha := 0.18
			if d >= m.InnerR {
				alpha = 0.45
			}
			r.set(x, y, ch, style.Background(base.Blend(ring, alpha).Tcell()))
		}
	}

	if res.Polyline != nil && res.Phase.IsPlaying() {
		nx, ny := r.playCell(res.Nearest.Point)
		r.set(nx, ny, '•', r.bg.Foreground(RgbNearest.Tcell()))
	}

	cx, cy := r.playCell(m.Pos)
	r.set(cx, cy, '+', r.bg.Foreground(ring.Tcell()).Bold(true))
}

// drawCountdown renders the remaining whole seconds in the block font
func (r *Renderer) drawCountdown(left time.Duration) {
	secs := int(math.Ceil(left.Seconds()))
	if secs < 0 {
		secs = 0
	}
	digits := fmt.Sprint(secs)

	// Each font pixel is two cells wide to offset the cell aspect ratio
	w := len(digits)*(bigDigitWidth*2+2) - 2
	x0 := (r.width - w) / 2
	y0 := HUDRows + (r.height-HUDRows-bigDigitHeight-2)/2
	style := r.bg.Foreground(RgbText.Tcell())

	for i, ch := range digits {
		glyph := bigDigits[ch-'0']
		gx := x0 + i*(bigDigitWidth*2+2)
		for row, line := range glyph {
			for col, px := range []rune(line) {
				if px == ' ' {
					continue
				}
				r.set(gx+col*2, y0+row, px, style)
				r.set(gx+col*2+1, y0+row, px, style)
			}
		}
	}

	r.drawCentered(y0+bigDigitHeight+1, countdownHint, r.bg.Foreground(RgbTextDim.Tcell()))
}

// drawBanner shows a centered title with a hint line below
func (r *Renderer) drawBanner(title, hint string, color RGB) {
	mid := HUDRows + (r.height-HUDRows)/2
	if title != "" {
		r.drawCentered(mid-1, " "+title+" ", r.bg.Background(color.Tcell()).Foreground(RgbStatusText.Tcell()).Bold(true))
	}
	r.drawCentered(mid+1, hint, r.bg.Foreground(RgbTextDim.Tcell()))
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	x := (r.width - runewidth.StringWidth(s)) / 2
	r.drawText(max(x, 0), y, s, style)
}

// drawText writes s starting at (x, y) and returns the column after it
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// drawHUD renders the status line
func (r *Renderer) drawHUD(res engine.StepResult, hud HUD) {
	hudStyle := r.bg.Background(RgbHUDBg.Tcell())
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, hudStyle)
	}

	x := r.drawText(1, 0, fmt.Sprintf("%6.2fs", res.Elapsed.Seconds()), hudStyle.Bold(true))
	x += 2

	x = r.drawText(x, 0, "STRIKES ", hudStyle.Foreground(RgbTextDim.Tcell()))
	for i := 0; i < res.MaxStrikes; i++ {
		color := RgbStrikeOff
		if i < res.Strikes {
			color = RgbStrikeOn
		}
		x = r.drawText(x, 0, "●", hudStyle.Foreground(color.Tcell()))
	}
	x += 2

	x = r.drawText(x, 0, "MODE ", hudStyle.Foreground(RgbTextDim.Tcell()))
	x = r.drawText(x, 0, hud.Mode.String(), hudStyle)
	x += 2

	if res.Phase == engine.PhaseRecatch {
		pill := fmt.Sprintf(" RECATCH %.1fs ", res.RecatchLeft.Seconds())
		x = r.drawText(x, 0, pill, hudStyle.Background(RgbRecatchBg.Tcell()).Foreground(RgbStatusText.Tcell()).Bold(true))
		x++
	}
	if res.Sabotage != 0 {
		x = r.drawText(x, 0, " "+res.Sabotage.String()+" ", hudStyle.Background(RgbSabotageBg.Tcell()))
		x++
	}

	barX := r.width - progressBarWidth - 1
	if res.Text != "" && x < barX-1 {
		text := runewidth.Truncate(res.Text, barX-1-x, "…")
		r.drawText(x, 0, text, hudStyle)
	}

	r.drawProgress(barX, res.BestProgress, res.TotalLength, hudStyle)
}

// drawProgress renders best progress as a gradient bar
func (r *Renderer) drawProgress(x int, best, total float64, style tcell.Style) {
	if x < 0 {
		return
	}
	ratio := 0.0
	if total > 0 {
		ratio = vmath.Clamp(best/total, 0, 1)
	}
	filled := int(ratio * progressBarWidth)
	for i := 0; i < progressBarWidth; i++ {
		color := RgbStrikeOff
		if i < filled {
			color = ProgressColor(float64(i+1) / progressBarWidth)
		}
		r.screen.SetContent(x+i, 0, '▮', nil, style.Foreground(color.Tcell()))
	}
}

// drawDebug renders overlay lines at the bottom-left
func (r *Renderer) drawDebug(lines []string) {
	style := r.bg.Foreground(RgbTextDim.Tcell())
	y := r.height - len(lines)
	for _, line := range lines {
		if y >= HUDRows {
			r.drawText(0, y, line, style)
		}
		y++
	}
}
