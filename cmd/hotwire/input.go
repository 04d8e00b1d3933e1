package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/physics"
	"github.com/lixenwraith/hotwire/render"
	"github.com/lixenwraith/hotwire/vmath"
	"github.com/lixenwraith/hotwire/wire"
)

// action is a control request decoded from a key event
type action int

const (
	actionNone action = iota
	actionStart
	actionPause
	actionReset
	actionToggleMode
	actionQuit
)

// directionKeys maps runes to steering directions
var directionKeys = map[rune]physics.Direction{
	'w': physics.DirUp, 'W': physics.DirUp,
	's': physics.DirDown, 'S': physics.DirDown,
	'a': physics.DirLeft, 'A': physics.DirLeft,
	'd': physics.DirRight, 'D': physics.DirRight,
}

var arrowKeys = map[tcell.Key]physics.Direction{
	tcell.KeyUp:    physics.DirUp,
	tcell.KeyDown:  physics.DirDown,
	tcell.KeyLeft:  physics.DirLeft,
	tcell.KeyRight: physics.DirRight,
}

// inputState turns terminal events into per-step simulation input
// Desktop pointer steering follows the hovered cell; mobile pointer steering is a
// drag joystick anchored at the marker
type inputState struct {
	mode     physics.ControlMode
	joystick bool
	steer    physics.SteeringProfile
	uiScale  float64

	held [4]time.Time // Last press per direction bit

	target    vmath.Vec2
	hasTarget bool
	release   bool

	dragging bool
	origin   vmath.Vec2
	anchor   vmath.Vec2
}

func newInputState(mode physics.ControlMode, profile wire.Profile, uiScale float64) *inputState {
	return &inputState{
		mode:     mode,
		joystick: profile == wire.Mobile,
		steer:    physics.SteeringFor(profile),
		uiScale:  uiScale,
	}
}

// handleKey records held directions and decodes control keys
func (s *inputState) handleKey(ev *tcell.EventKey, now time.Time) action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyEnter:
		return actionStart
	case tcell.KeyEscape:
		return actionPause
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'c' || r == 'C') {
			return actionQuit
		}
		if dir, ok := directionKeys[r]; ok {
			s.press(dir, now)
			return actionNone
		}
		switch r {
		case ' ':
			return actionStart
		case 'm', 'M':
			return actionToggleMode
		case 'r', 'R':
			return actionReset
		case 'q', 'Q':
			return actionQuit
		}
	default:
		if dir, ok := arrowKeys[ev.Key()]; ok {
			s.press(dir, now)
		}
	}
	return actionNone
}

func (s *inputState) press(dir physics.Direction, now time.Time) {
	for i := range s.held {
		if dir == physics.Direction(1<<i) {
			s.held[i] = now
		}
	}
}

// handleMouse updates the pointer target; marker is the current marker position
func (s *inputState) handleMouse(ev *tcell.EventMouse, marker vmath.Vec2) {
	x, y := ev.Position()
	pos := render.CellCenter(x, y)
	buttons := ev.Buttons()

	if !s.joystick {
		// Release holds until the pointer hovers again without the button
		if buttons&tcell.ButtonSecondary != 0 {
			s.hasTarget = false
			s.release = true
			return
		}
		s.target = pos
		s.hasTarget = true
		return
	}

	if buttons&tcell.ButtonPrimary != 0 {
		if !s.dragging {
			s.dragging = true
			s.origin = pos
			s.anchor = marker
		}
		s.target = physics.JoystickTarget(s.anchor, s.origin, pos, s.steer, s.uiScale)
		s.hasTarget = true
		return
	}

	if s.dragging {
		s.dragging = false
		s.hasTarget = false
		s.release = true
	}
}

// toggleMode switches control mode and drops stale pointer state
func (s *inputState) toggleMode() physics.ControlMode {
	s.mode = s.mode.Toggle()
	s.dragging = false
	s.hasTarget = false
	s.release = true
	return s.mode
}

// snapshot returns the input for one step; release is consumed
func (s *inputState) snapshot(now time.Time) physics.Input {
	in := physics.Input{
		Mode:      s.mode,
		Target:    s.target,
		HasTarget: s.hasTarget,
		Release:   s.release,
	}
	for i, t := range s.held {
		if !t.IsZero() && now.Sub(t) < parameter.KeyHoldDuration {
			in.Keys |= physics.Direction(1 << i)
		}
	}
	s.release = false
	return in
}
