package status

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap holds named metrics of type T
// Reads go through an immutable snapshot; registering a new key publishes a copy
type MetricMap[T any] struct {
	mu   sync.Mutex // Serializes registration
	snap atomic.Pointer[metricSnapshot[T]]
}

type metricSnapshot[T any] struct {
	items map[string]*T
	keys  []string // Sorted
}

func NewMetricMap[T any]() *MetricMap[T] {
	m := &MetricMap[T]{}
	m.snap.Store(&metricSnapshot[T]{items: map[string]*T{}})
	return m
}

// Get returns the metric for key, registering it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if ptr, ok := m.snap.Load().items[key]; ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.snap.Load()
	if ptr, ok := cur.items[key]; ok {
		return ptr
	}
	next := &metricSnapshot[T]{
		items: make(map[string]*T, len(cur.items)+1),
		keys:  make([]string, 0, len(cur.keys)+1),
	}
	maps.Copy(next.items, cur.items)
	ptr := new(T)
	next.items[key] = ptr
	next.keys = append(next.keys, cur.keys...)
	next.keys = append(next.keys, key)
	slices.Sort(next.keys)
	m.snap.Store(next)
	return ptr
}

func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.snap.Load().items[key]
	return ok
}

// Keys returns registered keys in sorted order
func (m *MetricMap[T]) Keys() []string {
	return slices.Clone(m.snap.Load().keys)
}

// Range visits every metric in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	s := m.snap.Load()
	for _, k := range s.keys {
		fn(k, s.items[k])
	}
}

func (m *MetricMap[T]) Count() int {
	return len(m.snap.Load().keys)
}
