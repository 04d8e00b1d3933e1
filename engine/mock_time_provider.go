package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually driven clock for tests and replays
// Time only moves through SetTime and Advance
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64 // Nanoseconds past base, may be negative
}

// NewMockTimeProvider returns a clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.base)))
}

// Advance moves the clock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	return m.base.Add(time.Duration(m.offset.Add(int64(d))))
}
