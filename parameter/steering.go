package parameter

// Desktop steering tuning
const (
	DesktopMaxSpeed      = 650.0
	DesktopArriveRadius  = 120.0
	DesktopSteeringGain  = 14.0
	DesktopTargetSmooth  = 0.16 // seconds
	DesktopDrag          = 4.2
	DesktopLag           = 0.06 // seconds
	DesktopKeyAccel      = 1200.0
	DesktopKeyJitter     = 70.0
	DesktopJoystickReach = 230.0
	DesktopJoystickGain  = 1.25
	DesktopJoystickDead  = 6.0
)

// Mobile steering tuning, more stable and slightly slower
const (
	MobileMaxSpeed      = 540.0
	MobileArriveRadius  = 175.0
	MobileSteeringGain  = 12.2
	MobileTargetSmooth  = 0.20
	MobileDrag          = 4.9
	MobileLag           = 0.05
	MobileKeyAccel      = 1050.0
	MobileKeyJitter     = 55.0
	MobileJoystickReach = 250.0
	MobileJoystickGain  = 1.30
	MobileJoystickDead  = 7.0
)

// Sabotage forces
const (
	// WindAmplitude is the acceleration magnitude of each wind axis
	WindAmplitude = 650.0
	// WindOmega is the wind phase rate per millisecond of sim time
	WindOmega = 0.002
	// WindOmegaYRatio is the y-axis frequency multiplier
	WindOmegaYRatio = 1.3

	WobbleAmplitude = 900.0
	WobbleOmega     = 0.01
	WobbleOmegaX    = 2.7
	WobbleOmegaY    = 2.2
	// WobbleShake is the camera shake floor while wobble is active
	WobbleShake = 5.0
)
