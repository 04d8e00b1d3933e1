package parameter

// Desktop wire generation (gnarly, loops allowed)
const (
	// DesktopWirePoints is the number of random-walk control points before loop injection
	DesktopWirePoints = 140

	DesktopWireStartX = 0.03
	DesktopWireStartY = 0.55
	DesktopWireEndX   = 0.97
	DesktopWireEndY   = 0.52

	DesktopWireMin = 0.02
	DesktopWireMax = 0.98

	// DesktopForwardMin and DesktopForwardSpan define forward step size: min + U*span
	DesktopForwardMin  = 0.006
	DesktopForwardSpan = 0.008

	// DesktopBackPeriod marks steps with a raised chance of a backward excursion
	DesktopBackPeriod       = 17
	DesktopBackChanceGnarly = 0.45
	DesktopBackChance       = 0.12
	DesktopBackScaleMin     = 0.2
	DesktopBackScaleSpan    = 0.5

	// DesktopLateralMin and DesktopLateralSpan scale per-step vertical wander
	DesktopLateralMin  = 0.08
	DesktopLateralSpan = 0.09

	// DesktopKnotPeriod is the step period of the large directed vertical jump
	DesktopKnotPeriod   = 19
	DesktopKnotJumpMin  = 0.18
	DesktopKnotJumpSpan = 0.22

	DesktopLoopRadius     = 0.06
	DesktopLoopPoints     = 10
	DesktopLoopJitterMin  = 0.7
	DesktopLoopJitterSpan = 0.7
)

// DesktopLoopIndices are the control point indices where closed loops are spliced in
var DesktopLoopIndices = [...]int{32, 64, 101}

// Mobile wire generation (monotone x, never self-crossing)
const (
	MobileWirePoints = 85

	MobileWireStartX = 0.05
	MobileWireEndX   = 0.95
	MobileWireStartY = 0.55

	MobileWireMinY = 0.06
	MobileWireMaxY = 0.94

	// MobileWanderAccel is the span of random vertical acceleration per point
	MobileWanderAccel = 0.09
	// MobileWanderDamping damps vertical velocity per point
	MobileWanderDamping = 0.72

	MobileSpikePeriod   = 17
	MobileSpikeJumpMin  = 0.10
	MobileSpikeJumpSpan = 0.10

	// MobileKnotA and MobileKnotB place the tight y-only knots as a fraction of the point count
	MobileKnotA          = 0.35
	MobileKnotB          = 0.62
	MobileKnotSideSpan   = 0.18
	MobileKnotCenterSpan = 0.20

	// MobileEndpointMinY and MobileEndpointMaxY keep spawn and goal away from the edges
	MobileEndpointMinY = 0.30
	MobileEndpointMaxY = 0.75
)

// Sampling
const (
	// DesktopSegmentSamples is the Catmull-Rom subdivision count per control segment
	DesktopSegmentSamples = 10

	// MobileSegmentSamples is the linear subdivision count per control segment
	MobileSegmentSamples = 14

	// WaveFrequency is the per-sample phase step of the cosmetic wire wave
	WaveFrequency = 0.12

	DesktopWaveAmplitude = 0.9
	MobileWaveAmplitude  = 0.65
	DesktopWaveSpeed     = 0.015
	MobileWaveSpeed      = 0.012
)

// Default course seeds per profile
const (
	DesktopSeed = 1337
	MobileSeed  = 7331

	// HazardSeedSalt derives the hazard stream seed from the course seed
	HazardSeedSalt = 0x9E3779B9
)
