// Package simon implements the Simon memory game engine: sequence generation,
// timed playback, input verification and difficulty bookkeeping.
// It has no dependency on Bubble Tea; the platform layer drives it through
// Start, Stop and Submit and renders what it observes.
package simon

// Signal is one of the colored pads the player has to reproduce.
type Signal int

const (
	None Signal = iota
	Red
	Green
	Blue
	Yellow
)

// SignalCount is the number of playable signals.
const SignalCount = 4

// Signals returns all playable signals in pad order.
func Signals() []Signal {
	return []Signal{Red, Green, Blue, Yellow}
}

// Valid reports whether s is a playable signal.
func (s Signal) Valid() bool {
	return s >= Red && s <= Yellow
}

// String returns the color name shown in hints.
func (s Signal) String() string {
	switch s {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case Yellow:
		return "YELLOW"
	default:
		return ""
	}
}
