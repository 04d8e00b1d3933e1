package engine

// Phase is the single game phase value; every flag combination the game
// can be in maps to exactly one of these
type Phase int

const (
	PhaseIdle       Phase = iota // Menu or paused, input disabled
	PhaseCountdown               // Input disabled, pointer pre-aim allowed
	PhaseActive                  // Input enabled, collisions charge strikes
	PhaseRecatch                 // Active within a recatch grace window
	PhaseRespawning              // Brief freeze after a strike before the countdown
	PhaseOver                    // Strike budget exhausted
	PhaseWon
)

// String returns the name of the phase for debugging
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseCountdown:
		return "Countdown"
	case PhaseActive:
		return "Active"
	case PhaseRecatch:
		return "Recatch"
	case PhaseRespawning:
		return "Respawning"
	case PhaseOver:
		return "Over"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// IsPlaying reports whether input is enabled in this phase
func (p Phase) IsPlaying() bool {
	return p == PhaseActive || p == PhaseRecatch
}

// IsTerminal reports whether the attempt has ended
func (p Phase) IsTerminal() bool {
	return p == PhaseOver || p == PhaseWon
}

var validTransitions = map[Phase][]Phase{
	PhaseIdle:       {PhaseCountdown},
	PhaseCountdown:  {PhaseActive, PhaseRecatch, PhaseIdle},
	PhaseActive:     {PhaseRecatch, PhaseRespawning, PhaseOver, PhaseWon, PhaseIdle},
	PhaseRecatch:    {PhaseRecatch, PhaseActive, PhaseRespawning, PhaseOver, PhaseWon, PhaseIdle},
	PhaseRespawning: {PhaseCountdown, PhaseIdle},
	PhaseOver:       {PhaseIdle},
	PhaseWon:        {PhaseIdle},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
