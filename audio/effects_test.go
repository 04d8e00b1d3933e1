package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// drain streams s to completion and returns the sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("Expected stream to terminate")
	return total
}

func TestOscillateWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := map[string]waveFunc{
		"sine":   sineWave,
		"square": squareWave,
		"saw":    sawWave,
		"noise":  noiseWave(noiseSeed),
	}
	for name, wave := range waves {
		t.Run(name, func(t *testing.T) {
			samples := make([][2]float64, 100)
			n, ok := oscillate(wave, 220, 2205, rate).Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples ok, got %d %v", n, ok)
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 {
					t.Errorf("Sample %d out of range: %f", i, s[0])
				}
				if s[0] != s[1] {
					t.Errorf("Expected mono sample %d, got %f/%f", i, s[0], s[1])
				}
				if name == "square" && s[0] != 1 && s[0] != -1 {
					t.Errorf("Square sample %d should be -1 or 1, got %f", i, s[0])
				}
			}
		})
	}
}

func TestNoiseWaveRepeats(t *testing.T) {
	a, b := noiseWave(noiseSeed), noiseWave(noiseSeed)
	for i := 0; i < 50; i++ {
		if va, vb := a(0), b(0); va != vb {
			t.Fatalf("Step %d: expected identical noise, got %f and %f", i, va, vb)
		}
	}
}

func TestOscillateLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	want := rate.N(10 * time.Millisecond)
	if got := drain(t, oscillate(sineWave, 440, want, rate)); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

func TestEnvelopeGain(t *testing.T) {
	env := newEnvelope(100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, 1000)

	tests := []struct {
		pos  int
		want float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{50, 1},
		{80, 1},
		{90, 0.5},
		{100, 0},
	}
	for _, tt := range tests {
		if got := env.gain(tt.pos); got != tt.want {
			t.Errorf("gain(%d): expected %v, got %v", tt.pos, tt.want, got)
		}
	}
}

func TestShapeCutsAtEnvelope(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := newEnvelope(100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)
	src := oscillate(squareWave, 0, 500, rate) // Constant 1.0 at phase 0

	samples := make([][2]float64, 200)
	s := shape(src, env)
	n, _ := s.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[5][0] != 0.5 || samples[50][0] != 1 || samples[90][0] != 0.5 {
		t.Errorf("Expected attack/sustain/release 0.5/1/0.5, got %f/%f/%f",
			samples[5][0], samples[50][0], samples[90][0])
	}
	if n, ok := s.Stream(samples); n != 0 || ok {
		t.Errorf("Expected exhausted stream, got %d %v", n, ok)
	}
}

func TestSoundLengths(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound SoundType
		want  time.Duration
	}{
		{SoundBuzz, 220 * time.Millisecond},
		{SoundChime, 330 * time.Millisecond},
		{SoundWhoosh, 320 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := soundStreamer(tt.sound, cfg)
			if s == nil {
				t.Fatal("Expected non-nil streamer")
			}
			got := drain(t, s)
			want := rate.N(tt.want)
			if got < want-1 || got > want+1 {
				t.Errorf("Expected ~%d samples, got %d", want, got)
			}
		})
	}

	if s := soundStreamer(SoundType(99), cfg); s != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}

func TestNewVolume(t *testing.T) {
	src := oscillate(sineWave, 440, 44, 44100)

	v, ok := newVolume(src, 0).(*effects.Volume)
	if !ok || !v.Silent {
		t.Error("Expected zero volume to be silent")
	}
	v, ok = newVolume(src, 0.5).(*effects.Volume)
	if !ok || v.Silent || v.Volume != -1 || v.Base != 2 {
		t.Errorf("Expected log2 volume -1, got %+v", v)
	}
}
