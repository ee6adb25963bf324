package simon

import (
	"slices"
	"time"
)

// Status is the engine phase. It decides which commands are accepted.
type Status int

const (
	StatusIdle Status = iota
	StatusPlayingBack
	StatusAwaitingInput
	StatusValidating
	StatusGameOver
)

// String returns a stable lowercase name, used in logs and storage.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlayingBack:
		return "playing_back"
	case StatusAwaitingInput:
		return "awaiting_input"
	case StatusValidating:
		return "validating"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// acceptsInput reports whether Submit may record a signal in this status.
func (s Status) acceptsInput() bool {
	return s == StatusAwaitingInput || s == StatusValidating
}

// acceptsStart reports whether Start may begin a new game in this status.
func (s Status) acceptsStart() bool {
	return s == StatusIdle || s == StatusGameOver
}

// State is a point-in-time copy of the game. Callers may keep and modify it
// freely; it shares no memory with the engine.
type State struct {
	GameID   string
	Round    int
	Record   int
	Sequence []Signal
	Progress []Signal
	Status   Status
	Speed    time.Duration

	// Hint is the newest signal while the hint is visible, None otherwise.
	Hint Signal
	// Active is the pad currently lit by playback, None otherwise.
	Active Signal
	// Reason is set once Status is StatusGameOver.
	Reason EndReason
}

// Remaining returns how many signals the player still has to enter this round.
func (s State) Remaining() int {
	return len(s.Sequence) - len(s.Progress)
}

func (s State) clone() State {
	s.Sequence = slices.Clone(s.Sequence)
	s.Progress = slices.Clone(s.Progress)
	return s
}

// EndReason describes why a game ended.
type EndReason string

const (
	EndReasonNone     EndReason = ""
	EndReasonMismatch EndReason = "mismatch"
	EndReasonAborted  EndReason = "aborted"
)
