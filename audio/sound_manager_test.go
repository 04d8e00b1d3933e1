package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/hotwire/engine"
)

// TestSoundManagerGracefulDegradation verifies playback is a no-op without initialization
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	if err := sm.Play(SoundBuzz); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	sm.PlayForEvent(engine.Event{Type: engine.EventStrike})
	sm.Cleanup()

	if sm.Played(SoundBuzz) != 0 {
		t.Error("Expected nothing played while uninitialized")
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected disabled init to succeed, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Expected disabled manager to stay uninitialized")
	}
}

// TestSoundManagerInitialization exercises the speaker where a device exists
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker init fails without an audio device, the game runs silent
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got error: %v", err)
	}
	if err := sm.Play(SoundType(42)); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}

	sm.PlayForEvent(engine.Event{Type: engine.EventMorph})
	sm.PlayForEvent(engine.Event{Type: engine.EventPaused})
	if sm.Played(SoundWhoosh) != 1 {
		t.Errorf("Expected one whoosh, got %d", sm.Played(SoundWhoosh))
	}
}

// TestSoundForEvent verifies the event to effect table
func TestSoundForEvent(t *testing.T) {
	tests := []struct {
		event engine.EventType
		sound SoundType
		ok    bool
	}{
		{engine.EventStrike, SoundBuzz, true},
		{engine.EventRecatchFailed, SoundBuzz, true},
		{engine.EventRecaught, SoundChime, true},
		{engine.EventWon, SoundChime, true},
		{engine.EventMorph, SoundWhoosh, true},
		{engine.EventGameOver, 0, false},
		{engine.EventSabotage, 0, false},
		{engine.EventReset, 0, false},
	}
	for _, tt := range tests {
		s, ok := SoundForEvent(tt.event)
		if ok != tt.ok || (ok && s != tt.sound) {
			t.Errorf("SoundForEvent(%v) = %v, %v; want %v, %v", tt.event, s, ok, tt.sound, tt.ok)
		}
	}
}
