// Package engine runs the hot wire game simulation.
//
// A Simulation is a single-owner aggregate stepped once per frame by an
// external scheduler. All timing (countdown, sabotage, morph, recatch,
// respawn) is a comparison against the clock value passed into Step, so a
// run is fully replayable from a seed, a timestamp sequence and the input
// snapshots.
//
// Step ordering:
//  1. Apply in-flight morph interpolation
//  2. Rebuild the sampled polyline
//  3. Evaluate scheduled phase changes (respawn, countdown expiry)
//  4. Fire due sabotage and morph triggers (input enabled only)
//  5. Nearest-point query
//  6. Integrate steering (input enabled only)
//  7. Nearest-point query after the move
//  8. Resolve collision, recatch, progress and win
package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/physics"
	"github.com/lixenwraith/hotwire/vmath"
	"github.com/lixenwraith/hotwire/wire"
)

// ErrInvalidDelta is returned by Step for a negative frame delta
var ErrInvalidDelta = errors.New("invalid frame delta")

// StepResult reports the state after one Step for rendering, UI and audio
type StepResult struct {
	Phase      Phase
	Strikes    int
	MaxStrikes int

	BestProgress float64
	TotalLength  float64

	Marker   physics.Marker
	Target   vmath.Vec2 // Smoothed pointer target
	Nearest  wire.Nearest
	Distance float64
	Allowed  float64 // Collision tolerance in effect

	Elapsed       time.Duration // Time since input enabled in this attempt
	CountdownLeft time.Duration
	RecatchLeft   time.Duration

	Shake    float64 // Cosmetic camera shake intensity
	Morphing bool
	Sabotage SabotageSet
	Text     string // Latest player-facing message

	Events   []Event // Fired since the previous Step, control calls included
	Polyline *wire.Polyline
}

// Simulation owns every piece of mutable game state
type Simulation struct {
	cfg Config

	path     wire.Path
	sampler  *wire.Sampler
	polyline *wire.Polyline
	morph    *wire.Morph

	director *Director
	steering *physics.Controller
	marker   physics.Marker
	sabotage Sabotage

	phase        Phase
	strikes      int
	bestProgress float64

	countdownUntil time.Time
	respawnAt      time.Time
	recatchUntil   time.Time // Zero when no window is pending

	epoch   time.Time // First step time, origin of sabotage oscillators
	startAt time.Time // Input enable time of the current attempt
	elapsed time.Duration

	shake      float64
	text       string
	hazardText bool // text announces a sabotage or morph still in effect
	events     []Event
}

// New generates the course and builds a simulation in PhaseIdle
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path, err := wire.Generate(cfg.Seed, cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("generate course: %w", err)
	}
	return NewWithPath(cfg, path)
}

// NewWithPath builds a simulation on a caller-supplied course
func NewWithPath(cfg Config, path wire.Path) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if path.Profile != cfg.Profile {
		return nil, fmt.Errorf("%w: path profile %v, config profile %v", ErrInvalidConfig, path.Profile, cfg.Profile)
	}
	if err := path.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Separate streams keep the hazard schedule independent of steering input
	s := &Simulation{
		cfg:      cfg,
		path:     path.Clone(),
		sampler:  wire.NewSampler(cfg.Bounds),
		director: NewDirector(cfg.Profile, vmath.NewLCG(cfg.HazardSeed)),
		steering: physics.NewController(physics.SteeringFor(cfg.Profile), vmath.NewLCG(cfg.HazardSeed+1)),
		phase:    PhaseIdle,
		text:     idleText,
	}
	s.applyScale()
	s.polyline = s.sampler.Rebuild(s.path)
	s.respawn()
	return s, nil
}

// --- Accessors ---

func (s *Simulation) Config() Config                { return s.cfg }
func (s *Simulation) Phase() Phase                  { return s.phase }
func (s *Simulation) Strikes() int                  { return s.strikes }
func (s *Simulation) BestProgress() float64         { return s.bestProgress }
func (s *Simulation) Marker() physics.Marker        { return s.marker }
func (s *Simulation) Path() wire.Path               { return s.path.Clone() }
func (s *Simulation) Polyline() *wire.Polyline      { return s.polyline }
func (s *Simulation) Director() *Director           { return s.director }
func (s *Simulation) Morphing() bool                { return s.morph != nil }
func (s *Simulation) RecatchDeadline() time.Time    { return s.recatchUntil }
func (s *Simulation) Steering() *physics.Controller { return s.steering }

// Area returns the box the marker is clamped into
func (s *Simulation) Area() physics.Box {
	pad := parameter.PlayfieldPad * s.cfg.UIScale
	b := s.cfg.Bounds
	return physics.Box{
		Min: vmath.V(b.X+pad, b.Y+pad),
		Max: vmath.V(b.X+b.W-pad, b.Y+b.H-pad),
	}
}

// Allowed returns the collision tolerance at now
func (s *Simulation) Allowed(now time.Time) float64 {
	scale := s.cfg.UIScale
	allowed := s.marker.InnerR - parameter.WireRadius*scale - parameter.ToleranceMargin*scale
	if s.sabotage.Active(SabotagePinch, now) {
		allowed *= parameter.PinchShrink
	}
	return allowed
}

// --- Control ---

// Start begins a countdown from Idle, fresh or resuming
// A terminal game is fully reset first. Returns false when already running
func (s *Simulation) Start(now time.Time) bool {
	if s.phase.IsTerminal() {
		s.Reset(true)
	}
	if s.phase != PhaseIdle {
		return false
	}
	s.beginCountdown(now)
	return true
}

// Pause returns to Idle keeping strikes, progress and armed hazard timers
func (s *Simulation) Pause(now time.Time) bool {
	if s.phase != PhaseCountdown && !s.phase.IsPlaying() {
		return false
	}
	if s.phase.IsPlaying() {
		s.elapsed = now.Sub(s.startAt)
	}
	s.transition(PhaseIdle)
	s.countdownUntil = time.Time{}
	s.disableInput()
	s.emit(EventPaused, now)
	return true
}

// Reset returns to Idle with the marker at the start
// Sabotage, recatch and hazard timers are cleared; strikes only on a full reset
func (s *Simulation) Reset(full bool) {
	s.transition(PhaseIdle)
	s.sabotage.Clear()
	s.director.Disarm()
	s.recatchUntil = time.Time{}
	s.countdownUntil = time.Time{}
	s.respawnAt = time.Time{}
	if full {
		s.strikes = 0
		s.elapsed = 0
	}
	s.respawn()
	s.emit(EventReset, time.Time{})
}

// SetBounds applies a new playable area and UI scale
// The polyline is rebuilt; a stopped game re-spawns, a running one is clamped in
func (s *Simulation) SetBounds(bounds wire.Rect, uiScale float64) error {
	next := s.cfg
	next.Bounds = bounds
	next.UIScale = uiScale
	if err := next.Validate(); err != nil {
		return err
	}
	s.cfg = next
	s.sampler.Bounds = bounds
	s.applyScale()
	s.polyline = s.sampler.Rebuild(s.path)

	switch s.phase {
	case PhaseIdle, PhaseOver, PhaseWon:
		s.respawn()
	default:
		physics.ClampToRect(&s.marker, s.Area())
	}
	return nil
}

// --- Step ---

// Step advances the simulation by one frame
// dt above the configured maximum is clamped; negative dt is rejected
func (s *Simulation) Step(dt time.Duration, now time.Time, in physics.Input) (StepResult, error) {
	if dt < 0 {
		return StepResult{}, fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	if dt > s.cfg.MaxDelta {
		dt = s.cfg.MaxDelta
	}
	if s.epoch.IsZero() {
		s.epoch = now
	}

	// 1-2. Morph interpolation feeds the sampler
	if s.morph != nil {
		if s.morph.Apply(now, s.path) {
			s.morph = nil
		}
		s.path.ClampPoints()
	}
	s.polyline = s.sampler.Rebuild(s.path)

	// 3. Scheduled phase changes
	s.advanceSchedule(now)

	// 4. Hazards only while input is live
	if s.phase.IsPlaying() {
		s.fireHazards(now)
	}

	// 5. Pre-move query
	nearest := s.polyline.Nearest(s.marker.Pos)

	// 6. Steering
	area := s.Area()
	enabled := s.phase.IsPlaying()
	tms := float64(now.Sub(s.epoch)) / float64(time.Millisecond)
	mods := s.sabotage.Set(now).Modifiers()
	info := s.steering.Step(dt.Seconds(), tms, in, mods, enabled, &s.marker, area)
	s.shake = math.Max(s.shake, info.Shake)

	// 7-8. Post-move query and resolution
	allowed := s.Allowed(now)
	if enabled {
		nearest = s.polyline.Nearest(s.marker.Pos)
		s.resolve(now, nearest, allowed)
	}
	if s.phase.IsPlaying() {
		s.elapsed = now.Sub(s.startAt)
	}
	s.expireHazardText(now)

	res := s.result(now, nearest, allowed)
	s.events = nil
	s.decayShake()
	return res, nil
}

// advanceSchedule handles the respawn freeze and countdown expiry
func (s *Simulation) advanceSchedule(now time.Time) {
	if s.phase == PhaseRespawning && !now.Before(s.respawnAt) {
		s.respawnAt = time.Time{}
		s.respawn()
		s.emit(EventRespawn, now)
		s.beginCountdown(now)
	}

	if s.phase == PhaseCountdown && !now.Before(s.countdownUntil) {
		s.countdownUntil = time.Time{}
		next := PhaseActive
		if !s.recatchUntil.IsZero() {
			// A window opened before a pause resolves on this attempt
			next = PhaseRecatch
		}
		s.transition(next)
		s.startAt = now
		s.elapsed = 0
		if !s.director.Armed() {
			s.director.Arm(now)
		}
		s.emit(EventGo, now)
	}
}

// fireHazards triggers whichever hazard timers are due
func (s *Simulation) fireHazards(now time.Time) {
	sabotageDue, morphDue := s.director.Due(now)

	if sabotageDue {
		roll := s.director.TriggerSabotage(now)
		s.sabotage.Activate(roll.Kind, roll.Until)
		if roll.Shake {
			s.shake = math.Max(s.shake, parameter.SabotageShake)
		}
		s.events = append(s.events, Event{Type: EventSabotage, Kind: roll.Kind, Text: roll.Kind.Text(), Time: now})
		s.text = roll.Kind.Text()
		s.hazardText = true
	}

	if morphDue {
		to := s.director.TriggerMorph(now, s.path)
		m, err := wire.NewMorph(s.path, to, now, s.cfg.MorphDuration)
		if err != nil {
			// Perturb preserves point count and Config guarantees a positive duration
			return
		}
		s.morph = m
		s.recatchUntil = now.Add(s.cfg.RecatchWindow)
		s.transition(PhaseRecatch)
		s.shake = math.Max(s.shake, parameter.MorphShake)
		s.emit(EventMorph, now)
	}
}

// resolve applies collision, recatch, progress and win rules for a playing step
func (s *Simulation) resolve(now time.Time, nearest wire.Nearest, allowed float64) {
	d := nearest.Distance()

	if s.phase == PhaseRecatch {
		switch {
		case d <= allowed:
			s.recatchUntil = time.Time{}
			s.transition(PhaseActive)
			s.emit(EventRecaught, now)
		case !now.Before(s.recatchUntil):
			s.strike(now, EventRecatchFailed)
			return
		}
	} else if d > allowed {
		s.strike(now, EventStrike)
		return
	}

	s.bestProgress = math.Max(s.bestProgress, s.polyline.ProgressAt(nearest))

	winR := parameter.WinRadius * s.cfg.UIScale
	nearEnd := s.marker.Pos.Dist(s.polyline.End()) < winR
	farEnough := s.bestProgress >= s.polyline.Total*parameter.WinProgressFraction
	if nearEnd && farEnough {
		s.transition(PhaseWon)
		s.disableInput()
		s.emit(EventWon, now)
	}
}

// strike charges one strike and either ends the game or schedules a respawn
func (s *Simulation) strike(now time.Time, cause EventType) {
	s.strikes++
	s.recatchUntil = time.Time{}
	s.shake = math.Max(s.shake, parameter.StrikeShake)
	s.emit(cause, now)

	if s.strikes >= s.cfg.MaxStrikes {
		s.strikes = s.cfg.MaxStrikes
		s.transition(PhaseOver)
		s.disableInput()
		s.emit(EventGameOver, now)
		return
	}

	s.transition(PhaseRespawning)
	s.respawnAt = now.Add(s.cfg.RespawnDelay)
	s.disableInput()
}

// --- Internals ---

// transition moves to phase to; invalid transitions are ignored
func (s *Simulation) transition(to Phase) bool {
	if s.phase == to && to != PhaseRecatch {
		return true
	}
	if !CanTransition(s.phase, to) {
		return false
	}
	s.phase = to
	return true
}

func (s *Simulation) beginCountdown(now time.Time) {
	s.transition(PhaseCountdown)
	s.countdownUntil = now.Add(s.cfg.Countdown)
	s.disableInput()
	s.emit(EventCountdown, now)
}

// disableInput zeroes velocity and freezes the steering target on the marker
func (s *Simulation) disableInput() {
	s.marker.Vel = vmath.Vec2{}
	s.steering.Freeze(&s.marker)
}

// respawn puts the marker at rest on the first sample with progress cleared
func (s *Simulation) respawn() {
	s.marker.Spawn(s.polyline.Start())
	s.bestProgress = 0
	s.steering.Freeze(&s.marker)
}

func (s *Simulation) applyScale() {
	s.marker.OuterR = parameter.MarkerOuterRadius * s.cfg.UIScale
	s.marker.InnerR = parameter.MarkerInnerRadius * s.cfg.UIScale
}

func (s *Simulation) emit(t EventType, now time.Time) {
	text := eventText[t]
	s.events = append(s.events, Event{Type: t, Text: text, Time: now})
	s.text = text
	s.hazardText = t == EventMorph
}

// expireHazardText restores the idle message once no hazard is in effect
func (s *Simulation) expireHazardText(now time.Time) {
	if s.hazardText && s.sabotage.Set(now) == 0 && s.recatchUntil.IsZero() {
		s.text = idleText
		s.hazardText = false
	}
}

func (s *Simulation) decayShake() {
	s.shake *= parameter.ShakeDecay
	if s.shake < parameter.ShakeFloor {
		s.shake = 0
	}
}

func (s *Simulation) result(now time.Time, nearest wire.Nearest, allowed float64) StepResult {
	_, target := s.steering.Target()
	res := StepResult{
		Phase:        s.phase,
		Strikes:      s.strikes,
		MaxStrikes:   s.cfg.MaxStrikes,
		BestProgress: s.bestProgress,
		TotalLength:  s.polyline.Total,
		Marker:       s.marker,
		Target:       target,
		Nearest:      nearest,
		Distance:     nearest.Distance(),
		Allowed:      allowed,
		Elapsed:      s.elapsed,
		Shake:        s.shake,
		Morphing:     s.morph != nil,
		Sabotage:     s.sabotage.Set(now),
		Text:         s.text,
		Events:       s.events,
		Polyline:     s.polyline,
	}
	if s.phase == PhaseCountdown {
		res.CountdownLeft = max(0, s.countdownUntil.Sub(now))
	}
	if !s.recatchUntil.IsZero() {
		res.RecatchLeft = max(0, s.recatchUntil.Sub(now))
	}
	return res
}
