package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Writers cache pointers once and store into the atomics every step;
// readers (debug overlay) may run on another goroutine
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key: value", grouped by type, keys sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, k+": "+v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, k+": "+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.3f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, k+": "+strconv.FormatBool(v.Load()))
	})
	return lines
}
