package status

import "sync/atomic"

// MaxStringLen bounds stored strings, longer values are cut at a rune boundary
const MaxStringLen = 48

// AtomicString provides atomic string access
// Zero value is ready to use and reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the string value, truncating to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := 0
		for i := range val {
			if i > MaxStringLen {
				break
			}
			cut = i
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the current string value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
