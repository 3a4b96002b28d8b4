package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStart    EventKind = iota // Race started from the instructions screen
	EventCoin                      // A coin was collected
	EventCrash                     // The player hit a competitor
	EventGameOver                  // Lives ran out
	EventRestart                   // A new race started after game over
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventCoin:
		return "coin"
	case EventCrash:
		return "crash"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by games so the platform can react (sound, logging)
// without inspecting game internals.
type Event struct {
	Kind  EventKind
	Score int // Score after the event
	Lives int // Lives after the event
}
