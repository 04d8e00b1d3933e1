package engine

import "time"

// EventType identifies a simulation event reported to UI and audio hooks
type EventType int

const (
	EventCountdown     EventType = iota // Countdown started
	EventGo                             // Input enabled
	EventSabotage                       // Sabotage effect triggered, Kind is set
	EventMorph                          // Wire shift started, recatch window open
	EventRecaught                       // Tolerance reacquired inside the window
	EventStrike                         // Wire touched
	EventRecatchFailed                  // Window expired off the wire
	EventRespawn                        // Marker returned to the start
	EventGameOver
	EventWon
	EventPaused
	EventReset
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventCountdown:
		return "Countdown"
	case EventGo:
		return "Go"
	case EventSabotage:
		return "Sabotage"
	case EventMorph:
		return "Morph"
	case EventRecaught:
		return "Recaught"
	case EventStrike:
		return "Strike"
	case EventRecatchFailed:
		return "RecatchFailed"
	case EventRespawn:
		return "Respawn"
	case EventGameOver:
		return "GameOver"
	case EventWon:
		return "Won"
	case EventPaused:
		return "Paused"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Event is a single newly-fired occurrence within one Step
type Event struct {
	Type EventType
	Kind SabotageKind // Valid for EventSabotage
	Text string       // Player-facing message
	Time time.Time
}

// idleText is shown while no hazard is in effect
const idleText = "No sabotage… yet."

// eventText is the default message per event type
var eventText = map[EventType]string{
	EventCountdown:     "Get ready…",
	EventGo:            "GO! No sabotage… yet.",
	EventMorph:         "WIRE SHIFT! Recatch it!",
	EventRecaught:      "Recaught. Don't blink.",
	EventStrike:        "BUZZ! You touched the wire.",
	EventRecatchFailed: "RECATCH failed. The wire ate you.",
	EventRespawn:       "Back to the start.",
	EventGameOver:      "Game over. The wire wins.",
	EventWon:           "You did it. Somehow.",
	EventPaused:        "Paused.",
	EventReset:         "Reset. The wire is still mad.",
}
