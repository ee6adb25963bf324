package simon

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-simon/internal/config"
)

const waitTimeout = 2 * time.Second

type harness struct {
	t      *testing.T
	cfg    config.SimonConfig
	clock  clockwork.FakeClock
	events *ChannelObserver
	engine *Engine
}

func newHarness(t *testing.T, cfg config.SimonConfig, signals ...Signal) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		cfg:    cfg,
		clock:  clockwork.NewFakeClock(),
		events: NewChannelObserver(1024),
	}
	var src Source = NewSeededSource(1)
	if len(signals) > 0 {
		src = NewFixedSource(signals...)
	}
	h.engine = New(cfg, WithClock(h.clock), WithSource(src))
	h.engine.Observe(h.events.Observe)
	t.Cleanup(func() {
		h.engine.Stop()
		h.events.Close()
	})
	return h
}

// blockUntil waits for n pending timers, failing instead of hanging.
func (h *harness) blockUntil(n int) {
	h.t.Helper()
	done := make(chan struct{})
	go func() {
		h.clock.BlockUntil(n)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(waitTimeout):
		h.t.Fatalf("timed out waiting for %d pending timers", n)
	}
}

// playThrough drives the current playback to the input phase.
func (h *harness) playThrough() State {
	h.t.Helper()
	h.blockUntil(1)
	st := h.engine.State()
	require.Equal(h.t, StatusPlayingBack, st.Status)

	for i := range st.Sequence {
		if i > 0 {
			h.blockUntil(1)
		}
		h.clock.Advance(st.Speed)
		if i < len(st.Sequence)-1 {
			h.blockUntil(1)
			h.clock.Advance(h.cfg.Gap(st.Speed))
		}
	}

	// The hint timer is armed only after input has opened.
	h.blockUntil(1)
	st = h.engine.State()
	require.Equal(h.t, StatusAwaitingInput, st.Status)
	return st
}

// repeat submits the whole sequence correctly.
func (h *harness) repeat() {
	h.t.Helper()
	for _, sig := range h.engine.State().Sequence {
		require.True(h.t, h.engine.Submit(sig))
	}
}

// nextRound waits out the feedback pause and plays the new sequence.
func (h *harness) nextRound() State {
	h.t.Helper()
	h.blockUntil(1)
	h.clock.Advance(h.cfg.FeedbackPause())
	return h.playThrough()
}

// waitFor reads events until match returns true.
func (h *harness) waitFor(match func(Event) bool) Event {
	h.t.Helper()
	deadline := time.After(waitTimeout)
	for {
		select {
		case evt := <-h.events.Events():
			if match(evt) {
				return evt
			}
		case <-deadline:
			h.t.Fatal("timed out waiting for event")
			return nil
		}
	}
}

// drain returns every event currently buffered.
func (h *harness) drain() []Event {
	var out []Event
	for {
		select {
		case evt := <-h.events.Events():
			out = append(out, evt)
		default:
			return out
		}
	}
}

// withoutStateChanges filters snapshot events to keep assertions readable.
func withoutStateChanges(events []Event) []Event {
	var out []Event
	for _, evt := range events {
		if _, ok := evt.(StateChangedEvent); ok {
			continue
		}
		out = append(out, evt)
	}
	return out
}
