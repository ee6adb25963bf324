package simon

import (
	"sync"
	"time"
)

// Event is something the engine publishes to observers.
type Event interface {
	event()
}

// StateChangedEvent is sent after every mutation with a fresh snapshot.
type StateChangedEvent struct {
	State State
}

func (StateChangedEvent) event() {}

// SignalActivatedEvent is sent when playback lights a pad.
type SignalActivatedEvent struct {
	Signal Signal
	Index  int // Position in the sequence
}

func (SignalActivatedEvent) event() {}

// SignalDeactivatedEvent is sent when playback turns a pad off.
type SignalDeactivatedEvent struct {
	Signal Signal
	Index  int
}

func (SignalDeactivatedEvent) event() {}

// HintEvent is sent when the hint appears (Signal set) or clears (None).
type HintEvent struct {
	Signal Signal
}

func (HintEvent) event() {}

// RoundCompletedEvent is sent when the player reproduces the whole sequence.
type RoundCompletedEvent struct {
	Round  int
	Record int
	Speed  int64 // Flash duration for the next round, in milliseconds
}

func (RoundCompletedEvent) event() {}

// RoundAdvancedEvent is sent when a new round begins playback.
type RoundAdvancedEvent struct {
	Round int
}

func (RoundAdvancedEvent) event() {}

// GameOverEvent is the terminal notification of a game.
type GameOverEvent struct {
	GameID     string
	FinalRound int
	Completed  int // Rounds fully reproduced in this game
	Record     int
	Reason     EndReason
	Speed      time.Duration // Flash duration reached
	Duration   time.Duration // Wall time since Start
}

func (GameOverEvent) event() {}

// Observer receives engine events. It is called synchronously, in order,
// outside the engine lock. It must not block and must not call back into
// the engine; forward to a channel instead (see ChannelObserver).
type Observer func(Event)

// ChannelObserver buffers events for a consumer goroutine.
// When the buffer is full the oldest event is dropped.
type ChannelObserver struct {
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannelObserver creates an observer with the given buffer size.
func NewChannelObserver(bufferSize int) *ChannelObserver {
	if bufferSize < 1 {
		bufferSize = 64
	}
	return &ChannelObserver{
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// Observe is the Observer to register with Engine.Observe.
func (c *ChannelObserver) Observe(evt Event) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.events <- evt:
	default:
		// Buffer full: drop oldest, then retry once.
		select {
		case <-c.events:
		default:
		}
		select {
		case c.events <- evt:
		default:
		}
	}
}

// Events returns the channel to read from.
func (c *ChannelObserver) Events() <-chan Event {
	return c.events
}

// Done is closed once Close has been called.
func (c *ChannelObserver) Done() <-chan struct{} {
	return c.done
}

// Close stops delivery. Safe to call more than once.
func (c *ChannelObserver) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
