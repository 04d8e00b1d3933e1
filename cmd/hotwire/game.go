package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hotwire/audio"
	"github.com/lixenwraith/hotwire/engine"
	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/render"
	"github.com/lixenwraith/hotwire/status"
)

// game wires the simulation to the terminal, audio and metrics
type game struct {
	screen   tcell.Screen
	sim      *engine.Simulation
	renderer *render.Renderer
	sound    *audio.SoundManager
	input    *inputState
	clock    engine.TimeProvider

	reg     *status.Registry
	metrics *engine.Metrics
	debug   bool
	uiScale float64

	last time.Time
}

func newGame(screen tcell.Screen, sim *engine.Simulation, sound *audio.SoundManager, input *inputState, clock engine.TimeProvider, debug bool) *game {
	reg := status.NewRegistry()
	cfg := sim.Config()
	return &game{
		screen:   screen,
		sim:      sim,
		renderer: render.NewRenderer(screen, cfg.Profile),
		sound:    sound,
		input:    input,
		clock:    clock,
		reg:      reg,
		metrics:  engine.NewMetrics(reg),
		debug:    debug,
		uiScale:  cfg.UIScale,
	}
}

// handleEvent applies one terminal event, returns false to quit
func (g *game) handleEvent(ev tcell.Event) bool {
	now := g.clock.Now()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.apply(g.input.handleKey(ev, now), now)
	case *tcell.EventMouse:
		g.input.handleMouse(ev, g.sim.Marker().Pos)
	case *tcell.EventResize:
		g.screen.Sync()
		w, h := ev.Size()
		if err := g.sim.SetBounds(render.Bounds(w, h), g.uiScale); err != nil {
			log.Printf("resize to %dx%d ignored: %v", w, h, err)
		}
	}
	return true
}

// apply executes a control action
func (g *game) apply(a action, now time.Time) bool {
	switch a {
	case actionQuit:
		return false
	case actionStart:
		if g.sim.Start(now) {
			log.Printf("start from %v", g.sim.Phase())
		}
	case actionPause:
		g.sim.Pause(now)
	case actionReset:
		g.sim.Reset(true)
	case actionToggleMode:
		log.Printf("control mode %v", g.input.toggleMode())
	}
	return true
}

// tick advances the simulation to now and draws the frame
func (g *game) tick() {
	now := g.clock.Now()
	dt := parameter.FrameInterval
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	res, err := g.sim.Step(dt, now, g.input.snapshot(now))
	if err != nil {
		log.Printf("step skipped: %v", err)
		return
	}

	for _, ev := range res.Events {
		log.Printf("%v: %s", ev.Type, ev.Text)
		g.sound.PlayForEvent(ev)
	}
	g.metrics.Publish(res)

	hud := render.HUD{Mode: g.input.mode}
	if g.debug {
		hud.Debug = g.reg.Lines()
	}
	g.renderer.Draw(res, hud)
}

// run polls terminal events and ticks at the frame interval until quit
func (g *game) run() {
	eventChan := make(chan tcell.Event, parameter.EventBufferSize)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(eventChan, done)

	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case <-frameTicker.C:
			g.tick()
		}
	}
}

// pollEvents forwards terminal events until Fini or until done closes
func (g *game) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		// Nil after Fini
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
