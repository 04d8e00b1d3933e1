package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hotwire/engine"
	"github.com/lixenwraith/hotwire/physics"
	"github.com/lixenwraith/hotwire/vmath"
	"github.com/lixenwraith/hotwire/wire"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

// rowText returns the runes of screen row y
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

// straightResult builds a result with a horizontal wire across the middle of the play area
func straightResult(bounds wire.Rect) engine.StepResult {
	mid := bounds.Y + bounds.H/2
	pl := &wire.Polyline{
		Points: []vmath.Vec2{vmath.V(bounds.X+40, mid), vmath.V(bounds.X+bounds.W-40, mid)},
	}
	pl.CumLen = []float64{0, bounds.W - 80}
	pl.Total = bounds.W - 80

	m := physics.Marker{OuterR: 20, InnerR: 13}
	m.Spawn(pl.Start())
	return engine.StepResult{
		Phase:       engine.PhaseActive,
		MaxStrikes:  3,
		TotalLength: pl.Total,
		Marker:      m,
		Nearest:     wire.Nearest{Point: pl.Start()},
		Allowed:     20,
		Polyline:    pl,
	}
}

func TestBounds(t *testing.T) {
	b := Bounds(100, 40)
	if b.X != 0 || b.Y != CellHeight || b.W != 800 || b.H != 39*CellHeight {
		t.Errorf("Expected HUD row excluded, got %+v", b)
	}
	if Bounds(0, 40).Valid() || Bounds(100, 1).Valid() {
		t.Error("Expected empty rect for unusable screens")
	}
}

func TestCellMapping(t *testing.T) {
	x, y := ToCell(vmath.V(17, 33))
	if x != 2 || y != 2 {
		t.Errorf("Expected cell (2,2), got (%d,%d)", x, y)
	}
	if cx, cy := ToCell(CellCenter(7, 9)); cx != 7 || cy != 9 {
		t.Errorf("Expected center to map back to (7,9), got (%d,%d)", cx, cy)
	}
}

func TestSegmentRune(t *testing.T) {
	tests := []struct {
		d    vmath.Vec2
		want rune
	}{
		{vmath.V(10, 0), '─'},
		{vmath.V(0, 10), '│'},
		{vmath.V(8, 16), '╲'},
		{vmath.V(8, -16), '╱'},
		{vmath.V(-8, -16), '╲'},
	}
	for _, tt := range tests {
		if got := segmentRune(tt.d); got != tt.want {
			t.Errorf("segmentRune(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDrawWireAndPads(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	bounds := Bounds(100, 30)
	res := straightResult(bounds)

	r := NewRenderer(screen, wire.Mobile)
	r.Draw(res, HUD{Mode: physics.ModePointer})

	sx, sy := ToCell(res.Polyline.Start())
	if ch, _, _, _ := screen.GetContent(sx, sy); ch != '+' {
		t.Errorf("Expected marker center at start, got %q", ch)
	}

	ex, ey := ToCell(res.Polyline.End())
	if ch, _, _, _ := screen.GetContent(ex, ey); ch != 'E' {
		t.Errorf("Expected end pad at (%d,%d), got %q", ex, ey, ch)
	}

	midX := (sx + ex) / 2
	found := false
	for y := ey - 1; y <= ey+1; y++ {
		if ch, _, _, _ := screen.GetContent(midX, y); ch == '─' {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected wire glyph near (%d,%d)", midX, ey)
	}
}

func TestDrawHUD(t *testing.T) {
	screen := newTestScreen(t, 120, 30)
	res := straightResult(Bounds(120, 30))
	res.Strikes = 1
	res.Elapsed = 12340 * time.Millisecond
	res.Text = "BUZZ! You touched the wire."
	res.Phase = engine.PhaseRecatch
	res.RecatchLeft = 1200 * time.Millisecond

	r := NewRenderer(screen, wire.Desktop)
	r.Draw(res, HUD{Mode: physics.ModeDirectional})

	hud := rowText(screen, 0)
	for _, want := range []string{"12.34s", "STRIKES", "●●●", "MODE Keyboard", "RECATCH 1.2s", "BUZZ!"} {
		if !strings.Contains(hud, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, hud)
		}
	}

	// First strike dot is lit, the rest are off
	i := strings.Index(hud, "●")
	x := len([]rune(hud[:i]))
	_, _, on, _ := screen.GetContent(x, 0)
	_, _, off, _ := screen.GetContent(x+1, 0)
	onFg, _, _ := on.Decompose()
	offFg, _, _ := off.Decompose()
	if onFg != RgbStrikeOn.Tcell() || offFg != RgbStrikeOff.Tcell() {
		t.Errorf("Expected one lit strike, got %v / %v", onFg, offFg)
	}
}

func TestDrawCountdown(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	res := straightResult(Bounds(80, 30))
	res.Phase = engine.PhaseCountdown
	res.CountdownLeft = 2100 * time.Millisecond

	r := NewRenderer(screen, wire.Desktop)
	r.Draw(res, HUD{})

	var all strings.Builder
	for y := 0; y < 30; y++ {
		all.WriteString(rowText(screen, y))
		all.WriteByte('\n')
	}
	if !strings.Contains(all.String(), countdownHint) {
		t.Error("Expected countdown hint on screen")
	}
	if !strings.Contains(all.String(), "██████") {
		t.Error("Expected block digit on screen")
	}
}

func TestDrawBanners(t *testing.T) {
	tests := []struct {
		phase engine.Phase
		want  string
	}{
		{engine.PhaseOver, "GAME OVER"},
		{engine.PhaseWon, "CLEAN RUN in 3.50s"},
		{engine.PhaseIdle, "Enter/Space start"},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			screen := newTestScreen(t, 80, 24)
			res := straightResult(Bounds(80, 24))
			res.Phase = tt.phase
			res.Elapsed = 3500 * time.Millisecond

			NewRenderer(screen, wire.Desktop).Draw(res, HUD{})

			found := false
			for y := 0; y < 24; y++ {
				if strings.Contains(rowText(screen, y), tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected %q on screen", tt.want)
			}
		})
	}
}

func TestShakeOffset(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewRenderer(screen, wire.Desktop)
	res := straightResult(Bounds(80, 24))

	r.Draw(res, HUD{})
	if dx, dy := r.ShakeOffset(); dx != 0 || dy != 0 {
		t.Errorf("Expected no offset without shake, got (%d,%d)", dx, dy)
	}

	res.Shake = 16
	for i := 0; i < 20; i++ {
		r.Draw(res, HUD{})
		dx, dy := r.ShakeOffset()
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("Expected offset within one cell, got (%d,%d)", dx, dy)
		}
	}
}

func TestDebugOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	res := straightResult(Bounds(80, 24))
	NewRenderer(screen, wire.Desktop).Draw(res, HUD{Debug: []string{"sim.phase: Active", "sim.strikes: 0"}})

	if got := rowText(screen, 23); !strings.HasPrefix(got, "sim.strikes: 0") {
		t.Errorf("Expected last debug line at the bottom, got %q", got)
	}
	if got := rowText(screen, 22); !strings.HasPrefix(got, "sim.phase: Active") {
		t.Errorf("Expected first debug line above, got %q", got)
	}
}

func TestColors(t *testing.T) {
	if ProgressColor(0) != (RGB{}) {
		t.Error("Expected black for empty progress")
	}
	if ProgressColor(1) != RgbStartPad {
		t.Errorf("Expected full progress green, got %v", ProgressColor(1))
	}
	if DangerColor(0, 20) != RgbRing {
		t.Error("Expected ring color when centered")
	}
	if DangerColor(20, 20) != RgbDanger {
		t.Errorf("Expected danger color at tolerance, got %v", DangerColor(20, 20))
	}
	if got := (RGB{0, 0, 0}).Blend(RGB{200, 100, 50}, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected half blend, got %v", got)
	}
}
