package parameter

import "time"

// Terminal frontend
const (
	// FrameInterval is the render and simulation tick, about 60 Hz
	FrameInterval = 16 * time.Millisecond

	// KeyHoldDuration keeps a direction held after its last press or repeat
	// Terminals report no key release events
	KeyHoldDuration = 150 * time.Millisecond

	EventBufferSize = 256
)
