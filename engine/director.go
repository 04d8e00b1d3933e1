package engine

import (
	"time"

	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/vmath"
	"github.com/lixenwraith/hotwire/wire"
)

// HazardTiming is the base + jitter interval pair of one hazard timer
type HazardTiming struct {
	Base   time.Duration
	Jitter time.Duration
}

// next returns now + base + U*jitter
func (h HazardTiming) next(now time.Time, rnd vmath.Source) time.Time {
	return now.Add(h.Base + time.Duration(rnd.Float64()*float64(h.Jitter)))
}

// hazardTimings returns the sabotage and morph intervals for a profile
// Mobile intervals are longer
func hazardTimings(p wire.Profile) (sabotage, morph HazardTiming) {
	if p == wire.Mobile {
		return HazardTiming{parameter.MobileSabotageBase, parameter.MobileSabotageJitter},
			HazardTiming{parameter.MobileMorphBase, parameter.MobileMorphJitter}
	}
	return HazardTiming{parameter.DesktopSabotageBase, parameter.DesktopSabotageJitter},
		HazardTiming{parameter.DesktopMorphBase, parameter.DesktopMorphJitter}
}

// SabotageRoll is the outcome of one sabotage trigger
type SabotageRoll struct {
	Kind     SabotageKind
	Until    time.Time
	Duration time.Duration
	Shake    bool // Independent shake nudge
}

// Director schedules sabotage and morph on two independent randomized timers
// Each timer is re-armed from its own firing time
type Director struct {
	profile wire.Profile
	rnd     vmath.Source

	sabotageTiming HazardTiming
	morphTiming    HazardTiming

	armed        bool
	nextSabotage time.Time
	nextMorph    time.Time
}

// NewDirector creates an unarmed director drawing from rnd
func NewDirector(profile wire.Profile, rnd vmath.Source) *Director {
	s, m := hazardTimings(profile)
	return &Director{
		profile:        profile,
		rnd:            rnd,
		sabotageTiming: s,
		morphTiming:    m,
	}
}

// Arm schedules both timers from now
func (d *Director) Arm(now time.Time) {
	d.nextSabotage = d.sabotageTiming.next(now, d.rnd)
	d.nextMorph = d.morphTiming.next(now, d.rnd)
	d.armed = true
}

// Disarm cancels both timers
func (d *Director) Disarm() {
	d.armed = false
	d.nextSabotage = time.Time{}
	d.nextMorph = time.Time{}
}

// Armed reports whether timers are scheduled
func (d *Director) Armed() bool {
	return d.armed
}

// NextSabotage returns the scheduled sabotage time
func (d *Director) NextSabotage() time.Time {
	return d.nextSabotage
}

// NextMorph returns the scheduled morph time
func (d *Director) NextMorph() time.Time {
	return d.nextMorph
}

// Due reports which timers have elapsed at now
func (d *Director) Due(now time.Time) (sabotage, morph bool) {
	if !d.armed {
		return false, false
	}
	return !now.Before(d.nextSabotage), !now.Before(d.nextMorph)
}

// TriggerSabotage rolls one kind and its duration, then re-arms the sabotage timer
func (d *Director) TriggerSabotage(now time.Time) SabotageRoll {
	kind := PickSabotage(d.rnd.Float64())
	dur := parameter.SabotageDurationBase +
		time.Duration(d.rnd.Float64()*float64(parameter.SabotageDurationJitter))
	shake := d.rnd.Float64() < parameter.SabotageShakeChance

	d.nextSabotage = d.sabotageTiming.next(now, d.rnd)
	return SabotageRoll{Kind: kind, Until: now.Add(dur), Duration: dur, Shake: shake}
}

// TriggerMorph returns the perturbed target for current, then re-arms the morph timer
func (d *Director) TriggerMorph(now time.Time, current wire.Path) wire.Path {
	to := wire.Perturb(current, d.rnd)
	d.nextMorph = d.morphTiming.next(now, d.rnd)
	return to
}
