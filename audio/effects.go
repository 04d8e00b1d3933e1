package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/vmath"
)

// noiseSeed fixes the whoosh texture so every morph sounds the same
const noiseSeed = 0x5EED

// waveFunc maps an oscillator phase in [0,1) to a sample in [-1,1]
type waveFunc func(phase float64) float64

func sineWave(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func squareWave(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func sawWave(p float64) float64 { return 2*p - 1 }

// noiseWave ignores phase and draws from its own generator
func noiseWave(seed uint32) waveFunc {
	rnd := vmath.NewLCG(seed)
	return func(float64) float64 { return 2 * vmath.Signed(rnd) }
}

// oscillate streams wave at freq for exactly n samples
func oscillate(wave waveFunc, freq float64, n int, rate beep.SampleRate) beep.Streamer {
	phase, step, left := 0.0, freq/float64(rate), n
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if left <= 0 {
			return 0, false
		}
		k := min(len(samples), left)
		for i := range k {
			v := wave(phase)
			samples[i] = [2]float64{v, v}
			phase += step
			phase -= math.Floor(phase)
		}
		left -= k
		return k, true
	})
}

// envelope is a linear attack and release gain curve, in samples
type envelope struct {
	total, attack, release int
}

func newEnvelope(duration, attack, release time.Duration, rate beep.SampleRate) envelope {
	return envelope{total: rate.N(duration), attack: rate.N(attack), release: rate.N(release)}
}

func (e envelope) gain(pos int) float64 {
	switch {
	case pos >= e.total:
		return 0
	case pos < e.attack:
		return float64(pos) / float64(e.attack)
	case pos >= e.total-e.release:
		return float64(e.total-pos) / float64(e.release)
	}
	return 1
}

// shape applies env to src and cuts the stream at the envelope end
func shape(src beep.Streamer, env envelope) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= env.total {
			return 0, false
		}
		n, ok := src.Stream(samples[:min(len(samples), env.total-pos)])
		for i := range n {
			g := env.gain(pos)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// newVolume scales s by a linear gain, 0 or below is silent
// effects.Volume works in log2 units, log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// chimeNote prefers beep's sine generator and falls back to the local oscillator
func chimeNote(freq float64, duration, release time.Duration, rate beep.SampleRate) beep.Streamer {
	env := newEnvelope(duration, parameter.ChimeAttack, release, rate)
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		tone = oscillate(sineWave, freq, env.total, rate)
	}
	return shape(tone, env)
}

func buzz(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	env := newEnvelope(parameter.BuzzDuration, parameter.BuzzAttack, parameter.BuzzRelease, rate)
	src := oscillate(squareWave, parameter.BuzzFrequency, env.total, rate)
	return newVolume(shape(src, env), parameter.BuzzPeak*cfg.EffectVolumes[SoundBuzz]*cfg.MasterVolume)
}

func chime(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	low := chimeNote(parameter.ChimeNote1Frequency, parameter.ChimeNote1Duration, parameter.ChimeNote1Release, rate)
	high := chimeNote(parameter.ChimeNote2Frequency, parameter.ChimeNote2Duration, parameter.ChimeNote2Release, rate)
	return newVolume(beep.Seq(low, high), cfg.EffectVolumes[SoundChime]*cfg.MasterVolume)
}

func whoosh(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	env := newEnvelope(parameter.WhooshDuration, parameter.WhooshAttack, parameter.WhooshRelease, rate)
	src := oscillate(noiseWave(noiseSeed), 0, env.total, rate)
	return newVolume(shape(src, env), cfg.EffectVolumes[SoundWhoosh]*cfg.MasterVolume)
}

// soundStreamer builds a fresh one-shot streamer for s, nil when unknown
func soundStreamer(s SoundType, cfg *AudioConfig) beep.Streamer {
	switch s {
	case SoundBuzz:
		return buzz(cfg)
	case SoundChime:
		return chime(cfg)
	case SoundWhoosh:
		return whoosh(cfg)
	}
	return nil
}
