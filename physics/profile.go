package physics

import (
	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/wire"
)

// SteeringProfile holds per-device steering tuning
// Distances are presentation units, times are seconds
type SteeringProfile struct {
	MaxSpeed     float64
	ArriveRadius float64
	SteeringGain float64
	TargetSmooth float64 // Pointer target smoothing time constant
	Drag         float64
	Lag          float64 // Acceleration lag time constant
	KeyAccel     float64
	KeyJitter    float64

	JoystickReach    float64 // Max joystick deflection, scaled by UI scale
	JoystickGain     float64
	JoystickDeadzone float64 // Scaled by UI scale
}

// DesktopSteering is snappier with tighter arrival
var DesktopSteering = SteeringProfile{
	MaxSpeed:         parameter.DesktopMaxSpeed,
	ArriveRadius:     parameter.DesktopArriveRadius,
	SteeringGain:     parameter.DesktopSteeringGain,
	TargetSmooth:     parameter.DesktopTargetSmooth,
	Drag:             parameter.DesktopDrag,
	Lag:              parameter.DesktopLag,
	KeyAccel:         parameter.DesktopKeyAccel,
	KeyJitter:        parameter.DesktopKeyJitter,
	JoystickReach:    parameter.DesktopJoystickReach,
	JoystickGain:     parameter.DesktopJoystickGain,
	JoystickDeadzone: parameter.DesktopJoystickDead,
}

// MobileSteering is more stable and slightly slower for fingers
var MobileSteering = SteeringProfile{
	MaxSpeed:         parameter.MobileMaxSpeed,
	ArriveRadius:     parameter.MobileArriveRadius,
	SteeringGain:     parameter.MobileSteeringGain,
	TargetSmooth:     parameter.MobileTargetSmooth,
	Drag:             parameter.MobileDrag,
	Lag:              parameter.MobileLag,
	KeyAccel:         parameter.MobileKeyAccel,
	KeyJitter:        parameter.MobileKeyJitter,
	JoystickReach:    parameter.MobileJoystickReach,
	JoystickGain:     parameter.MobileJoystickGain,
	JoystickDeadzone: parameter.MobileJoystickDead,
}

// SteeringFor returns the tuning matching a wire profile
func SteeringFor(p wire.Profile) SteeringProfile {
	if p == wire.Mobile {
		return MobileSteering
	}
	return DesktopSteering
}
