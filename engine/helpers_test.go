package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/hotwire/physics"
	"github.com/lixenwraith/hotwire/vmath"
	"github.com/lixenwraith/hotwire/wire"
)

var (
	testStart  = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	testBounds = wire.Rect{X: 0, Y: 0, W: 1000, H: 600}
	frame      = 16 * time.Millisecond

	stillInput = physics.Input{Mode: physics.ModePointer}
)

// harness drives a simulation with a mock clock at a fixed frame rate
type harness struct {
	t     *testing.T
	sim   *Simulation
	clock *MockTimeProvider
}

func testConfig() Config {
	cfg := DefaultConfig(wire.Mobile)
	cfg.Bounds = testBounds
	return cfg
}

// straightPath is a horizontal course at y=300 from x=50 to x=950
func straightPath() wire.Path {
	return wire.Path{Profile: wire.Mobile, Points: []vmath.Vec2{
		vmath.V(0.05, 0.5), vmath.V(0.5, 0.5), vmath.V(0.95, 0.5),
	}}
}

func newHarness(t *testing.T, path wire.Path) *harness {
	t.Helper()
	sim, err := NewWithPath(testConfig(), path)
	if err != nil {
		t.Fatalf("NewWithPath failed: %v", err)
	}
	return &harness{t: t, sim: sim, clock: NewMockTimeProvider(testStart)}
}

func (h *harness) now() time.Time {
	return h.clock.Now()
}

// step advances the clock by one frame and steps the simulation
func (h *harness) step(in physics.Input) StepResult {
	h.t.Helper()
	now := h.clock.Advance(frame)
	res, err := h.sim.Step(frame, now, in)
	if err != nil {
		h.t.Fatalf("Step failed: %v", err)
	}
	return res
}

// stepFor steps for at least d, returning every event seen and the last result
func (h *harness) stepFor(d time.Duration, in physics.Input) ([]Event, StepResult) {
	h.t.Helper()
	var events []Event
	var res StepResult
	for end := h.now().Add(d); h.now().Before(end); {
		res = h.step(in)
		events = append(events, res.Events...)
	}
	return events, res
}

// until steps until pred holds, failing after limit frames
func (h *harness) until(limit int, in physics.Input, pred func(StepResult) bool) StepResult {
	h.t.Helper()
	for i := 0; i < limit; i++ {
		res := h.step(in)
		if pred(res) {
			return res
		}
	}
	h.t.Fatalf("Condition not reached within %d frames (phase %v)", limit, h.sim.Phase())
	return StepResult{}
}

// startActive runs Start and the full countdown
func (h *harness) startActive() StepResult {
	h.t.Helper()
	if !h.sim.Start(h.now()) {
		h.t.Fatalf("Start refused in phase %v", h.sim.Phase())
	}
	return h.until(400, stillInput, func(r StepResult) bool { return r.Phase.IsPlaying() })
}

// place puts the marker at pos at rest with the steering target pinned to it
func (h *harness) place(pos vmath.Vec2) {
	h.sim.marker.Spawn(pos)
	h.sim.steering.Freeze(&h.sim.marker)
}

// forceStrike drags the marker off the wire until a strike lands
func (h *harness) forceStrike() StepResult {
	h.t.Helper()
	m := h.sim.Marker()
	away := physics.Input{Mode: physics.ModePointer, Target: vmath.V(m.Pos.X, 40), HasTarget: true}
	return h.until(200, away, func(r StepResult) bool { return hasEvent(r.Events, EventStrike) })
}

func hasEvent(events []Event, t EventType) bool {
	return countEvents(events, t) > 0
}

func countEvents(events []Event, t EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
