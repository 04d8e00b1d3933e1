package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/hotwire/engine"
	"github.com/lixenwraith/hotwire/parameter"
)

// SoundManager owns the speaker mixer and plays one-shot effects
// All methods are safe without initialization and become no-ops
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a sound manager, nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// A disabled config leaves the manager silent without error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLatency)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup drops all queued sounds
// beep has no speaker shutdown; an empty mixer produces silence
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues soundType on the mixer
func (sm *SoundManager) Play(soundType SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer := soundStreamer(soundType, sm.cfg)
	if streamer == nil {
		return ErrUnknownSound
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[soundType]++
	return nil
}

// PlayForEvent plays the sound mapped to a simulation event, if any
func (sm *SoundManager) PlayForEvent(ev engine.Event) {
	if s, ok := SoundForEvent(ev.Type); ok {
		_ = sm.Play(s)
	}
}

// Played returns how many times soundType has been queued
func (sm *SoundManager) Played(soundType SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if soundType < 0 || soundType >= soundTypeCount {
		return 0
	}
	return sm.played[soundType]
}

// SoundForEvent maps simulation events to effects
func SoundForEvent(t engine.EventType) (SoundType, bool) {
	switch t {
	case engine.EventStrike, engine.EventRecatchFailed:
		return SoundBuzz, true
	case engine.EventRecaught, engine.EventWon:
		return SoundChime, true
	case engine.EventMorph:
		return SoundWhoosh, true
	default:
		return 0, false
	}
}
