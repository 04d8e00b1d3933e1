package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/hotwire/status"
)

// Metrics caches registry pointers for per-step publishing
type Metrics struct {
	phase     *status.AtomicString
	sabotage  *status.AtomicString
	strikes   *atomic.Int64
	progress  *status.AtomicFloat
	best      *status.AtomicFloat
	distance  *status.AtomicFloat
	allowed   *status.AtomicFloat
	elapsed   *status.AtomicFloat
	morphing  *atomic.Bool
	recatch   *atomic.Bool
	morphs    *atomic.Int64
	sabotages *atomic.Int64
}

// NewMetrics registers the simulation metrics in reg
func NewMetrics(reg *status.Registry) *Metrics {
	return &Metrics{
		phase:     reg.Strings.Get("sim.phase"),
		sabotage:  reg.Strings.Get("sim.sabotage"),
		strikes:   reg.Ints.Get("sim.strikes"),
		progress:  reg.Floats.Get("sim.progress"),
		best:      reg.Floats.Get("sim.progress_best"),
		distance:  reg.Floats.Get("sim.distance"),
		allowed:   reg.Floats.Get("sim.allowed"),
		elapsed:   reg.Floats.Get("sim.elapsed"),
		morphing:  reg.Bools.Get("sim.morphing"),
		recatch:   reg.Bools.Get("sim.recatch"),
		morphs:    reg.Ints.Get("sim.morphs"),
		sabotages: reg.Ints.Get("sim.sabotages"),
	}
}

// Publish stores one step result
func (m *Metrics) Publish(res StepResult) {
	m.phase.Store(res.Phase.String())
	m.sabotage.Store(res.Sabotage.String())
	m.strikes.Store(int64(res.Strikes))
	if res.TotalLength > 0 {
		m.progress.Set(res.BestProgress / res.TotalLength)
		m.best.Max(res.BestProgress / res.TotalLength)
	}
	m.distance.Set(res.Distance)
	m.allowed.Set(res.Allowed)
	m.elapsed.Set(res.Elapsed.Seconds())
	m.morphing.Store(res.Morphing)
	m.recatch.Store(res.Phase == PhaseRecatch)
	for _, ev := range res.Events {
		switch ev.Type {
		case EventMorph:
			m.morphs.Add(1)
		case EventSabotage:
			m.sabotages.Add(1)
		}
	}
}
