package physics

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/hotwire/vmath"
)

// ControlMode selects how input snapshots become acceleration
type ControlMode int

const (
	ModePointer     ControlMode = iota // Absolute target, arrive steering
	ModeDirectional                    // Held directions, fixed thrust plus jitter
)

// String returns the mode name shown in the HUD
func (m ControlMode) String() string {
	switch m {
	case ModePointer:
		return "Pointer"
	case ModeDirectional:
		return "Keyboard"
	default:
		return "Unknown"
	}
}

// Toggle returns the other mode
func (m ControlMode) Toggle() ControlMode {
	if m == ModePointer {
		return ModeDirectional
	}
	return ModePointer
}

// ParseControlMode resolves a mode name (case-insensitive)
func ParseControlMode(s string) (ControlMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pointer", "mouse", "touch", "":
		return ModePointer, nil
	case "keys", "keyboard", "directional":
		return ModeDirectional, nil
	}
	return ModePointer, fmt.Errorf("unknown control mode %q", s)
}

// Direction is a bitset of held directional inputs
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// Has reports whether every bit of o is set
func (d Direction) Has(o Direction) bool {
	return d&o == o
}

// Vector returns the normalized sum of held directions, +y points down
// Opposing directions cancel
func (d Direction) Vector() vmath.Vec2 {
	var v vmath.Vec2
	if d.Has(DirRight) {
		v.X++
	}
	if d.Has(DirLeft) {
		v.X--
	}
	if d.Has(DirDown) {
		v.Y++
	}
	if d.Has(DirUp) {
		v.Y--
	}
	return vmath.Normalize2D(v)
}

// Input is one consistent control snapshot delivered per step
type Input struct {
	Mode ControlMode

	// Target is the pointer target in presentation space, valid when HasTarget
	Target    vmath.Vec2
	HasTarget bool

	// Release pins the target to the marker (pointer lifted or left the field)
	Release bool

	Keys Direction
}
