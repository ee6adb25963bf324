package tui

import (
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

type fakeRecorder struct {
	mu      sync.Mutex
	results []simon.Result
	err     error
}

func (r *fakeRecorder) RecordResult(res simon.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
	return r.err
}

func (r *fakeRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

type modelHarness struct {
	t     *testing.T
	cfg   config.SimonConfig
	clock clockwork.FakeClock
	rec   *fakeRecorder
	eng   *simon.Engine
	model Model
}

func newModelHarness(t *testing.T, signals ...simon.Signal) *modelHarness {
	t.Helper()
	cfg := config.DefaultSimonConfig()
	cfg.Hint.Enabled = false

	h := &modelHarness{
		t:     t,
		cfg:   cfg,
		clock: clockwork.NewFakeClock(),
		rec:   &fakeRecorder{},
	}
	h.eng = simon.New(cfg,
		simon.WithClock(h.clock),
		simon.WithSource(simon.NewFixedSource(signals...)),
	)
	h.model = NewModel(h.eng, h.rec, cfg, core.DefaultConfig(), nil)
	t.Cleanup(h.model.Close)
	return h
}

// send runs msg through Update and keeps the resulting model.
func (h *modelHarness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	require.True(h.t, ok)
	h.model = m
	return cmd
}

// pump feeds every buffered engine event into the model.
func (h *modelHarness) pump() {
	for {
		select {
		case evt := <-h.model.events.Events():
			h.send(EngineEventMsg{Event: evt})
		default:
			return
		}
	}
}

// finishPlayback advances the fake clock through a one-signal playback.
func (h *modelHarness) finishPlayback() {
	h.t.Helper()
	h.clock.BlockUntil(1)
	h.clock.Advance(h.cfg.Flash())
	// Events are delivered after the state lock is released, so wait on
	// what the model has seen rather than on the engine.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h.pump()
		if h.model.State().Status == simon.StatusAwaitingInput {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	h.t.Fatal("model never saw the input phase")
}

func TestModelIdleView(t *testing.T) {
	h := newModelHarness(t, simon.Red)

	assert.Equal(t, simon.StatusIdle, h.model.State().Status)
	assert.Contains(t, h.model.View(), "PRESS START")
}

func TestModelStartKey(t *testing.T) {
	h := newModelHarness(t, simon.Red)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.pump()

	st := h.model.State()
	assert.Equal(t, simon.StatusPlayingBack, st.Status)
	assert.Equal(t, 1, st.Round)
	assert.Contains(t, h.model.View(), "WATCH!")
}

func TestModelPadIgnoredDuringPlayback(t *testing.T) {
	h := newModelHarness(t, simon.Red)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	cmd := h.send(runeKey("1"))

	assert.Nil(t, cmd, "rejected taps do not flash")
	assert.Equal(t, simon.None, h.model.pressed)
}

func TestModelPadFlashAndRelease(t *testing.T) {
	h := newModelHarness(t, simon.Red, simon.Green)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.finishPlayback()
	assert.Contains(t, h.model.View(), "REPEAT!")

	cmd := h.send(runeKey("1"))
	require.NotNil(t, cmd)
	assert.Equal(t, simon.Red, h.model.pressed)

	h.pump()
	assert.Contains(t, h.model.View(), "CORRECT!")

	// A stale release does not clear a newer press.
	h.send(PressReleasedMsg{Seq: h.model.pressSeq - 1})
	assert.Equal(t, simon.Red, h.model.pressed)

	h.send(PressReleasedMsg{Seq: h.model.pressSeq})
	assert.Equal(t, simon.None, h.model.pressed)
}

func TestModelWrongPadEndsGame(t *testing.T) {
	h := newModelHarness(t, simon.Red)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.finishPlayback()

	h.send(runeKey("y"))
	h.pump()

	assert.Equal(t, simon.StatusGameOver, h.model.State().Status)
	assert.Equal(t, "Game over. Record: 0", h.model.Toast())
	assert.Contains(t, h.model.View(), "GAME OVER")
	require.Equal(t, 1, h.rec.count())
	assert.Equal(t, simon.EndReasonMismatch, h.rec.results[0].Reason)
	assert.Equal(t, 1, h.rec.results[0].FinalRound)
}

func TestModelStopKey(t *testing.T) {
	h := newModelHarness(t, simon.Red)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	h.pump()

	st := h.model.State()
	assert.Equal(t, simon.StatusGameOver, st.Status)
	assert.Equal(t, simon.EndReasonAborted, st.Reason)

	// Start clears the toast.
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, h.model.Toast())
}

func TestModelRecorderErrorIsNotFatal(t *testing.T) {
	h := newModelHarness(t, simon.Red)
	h.rec.err = errors.New("disk full")

	h.send(EngineEventMsg{Event: simon.GameOverEvent{GameID: "g", FinalRound: 4, Record: 3}})

	assert.Equal(t, "Game over. Record: 3", h.model.Toast())
	assert.Equal(t, 1, h.rec.count())
}

func TestModelHelpToggle(t *testing.T) {
	h := newModelHarness(t, simon.Red)

	assert.False(t, h.model.help.ShowAll)
	h.send(runeKey("?"))
	assert.True(t, h.model.help.ShowAll)
	assert.Contains(t, h.model.View(), "yellow")
}

func TestModelQuit(t *testing.T) {
	h := newModelHarness(t, simon.Red)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	cmd := h.send(runeKey("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, h.model.View())
	assert.Equal(t, simon.StatusGameOver, h.eng.State().Status)
}

func TestModelWaitForEventAfterClose(t *testing.T) {
	h := newModelHarness(t, simon.Red)
	h.model.Close()

	// Drain anything published by Close.
	for len(h.model.events.Events()) > 0 {
		<-h.model.events.Events()
	}
	assert.Nil(t, waitForEvent(h.model.events)())
}

func TestModelWindowResize(t *testing.T) {
	h := newModelHarness(t, simon.Red)

	h.send(tea.WindowSizeMsg{Width: 40, Height: 18})
	assert.True(t, h.model.config.Compact())
	assert.NotContains(t, h.model.View(), "YELLOW")
}
