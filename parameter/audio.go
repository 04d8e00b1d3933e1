package parameter

import "time"

// Audio defaults
const (
	AudioSampleRate    = 44100
	AudioBufferLatency = 100 * time.Millisecond
	AudioMasterVolume  = 0.5
)

// Strike buzz: square wave, fast attack, long release
const (
	BuzzFrequency = 95.0
	BuzzPeak      = 0.28
	BuzzDuration  = 220 * time.Millisecond
	BuzzAttack    = 10 * time.Millisecond
	BuzzRelease   = 200 * time.Millisecond
)

// Recatch and win chime: two sine notes (A5, E6)
const (
	ChimeNote1Frequency = 880.0
	ChimeNote2Frequency = 1318.51
	ChimeNote1Duration  = 90 * time.Millisecond
	ChimeNote2Duration  = 240 * time.Millisecond
	ChimeAttack         = 4 * time.Millisecond
	ChimeNote1Release   = 60 * time.Millisecond
	ChimeNote2Release   = 200 * time.Millisecond
)

// Morph whoosh: shaped noise burst
const (
	WhooshDuration = 320 * time.Millisecond
	WhooshAttack   = 80 * time.Millisecond
	WhooshRelease  = 220 * time.Millisecond
)
