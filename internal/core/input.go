// Package core provides fundamental types shared by the platform layer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// input handling pure and testable.
package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Enter, Space - start a new game
	ActionStop             // S, Esc - abort the running game
	ActionQuit             // Q, Ctrl+C - exit
	ActionHelp             // ? - toggle full help
	ActionPadRed           // 1, R
	ActionPadGreen         // 2, G
	ActionPadBlue          // 3, B
	ActionPadYellow        // 4, Y
)

// PadCount is the number of pads on the board.
const PadCount = 4

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionStop:
		return "Stop"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	case ActionPadRed:
		return "Red"
	case ActionPadGreen:
		return "Green"
	case ActionPadBlue:
		return "Blue"
	case ActionPadYellow:
		return "Yellow"
	default:
		return "Unknown"
	}
}

// Pad returns the board index (0-3) of a pad action.
func (a Action) Pad() (int, bool) {
	if a < ActionPadRed || a > ActionPadYellow {
		return -1, false
	}
	return int(a - ActionPadRed), true
}

// PadAction returns the action for the pad at index i, or ActionNone.
func PadAction(i int) Action {
	if i < 0 || i >= PadCount {
		return ActionNone
	}
	return ActionPadRed + Action(i)
}
