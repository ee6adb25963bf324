package simon

import (
	"context"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-simon/internal/config"
)

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used for every timed step.
func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithSource sets the entropy used to draw new signals.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// Engine runs one Simon game session. It owns the game state; everything
// else reads copies through State or events.
//
// Timed work (playback, hint expiry, the pause after a round) runs in a
// single background routine. Starting a new routine cancels the previous
// one and waits for it to exit. Each routine carries the epoch it was
// started in, and every state change it makes is dropped once the epoch has
// moved on, so a stale timer can never touch a newer game.
type Engine struct {
	cfg        config.SimonConfig
	difficulty *config.DifficultyManager
	clock      clockwork.Clock
	src        Source
	logger     *log.Logger

	mu        sync.Mutex
	state     State
	epoch     uint64
	startedAt time.Time
	observers []Observer
	pending   []Event

	// notifyMu keeps event delivery in mutation order.
	notifyMu sync.Mutex

	// runMu serializes routine hand-over.
	runMu sync.Mutex
	run   *routine
}

type routine struct {
	epoch  uint64 // Epoch the routine was launched for
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an idle engine.
func New(cfg config.SimonConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		clock:      clockwork.NewRealClock(),
		src:        NewSeededSource(time.Now().UnixNano()),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = State{
		Status: StatusIdle,
		Speed:  cfg.Flash(),
	}
	return e
}

// Observe registers an observer for all future events.
func (e *Engine) Observe(o Observer) {
	if o == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, o)
}

// State returns a copy of the current game state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// Start begins a new game. It is ignored unless the engine is idle or the
// previous game is over, and reports whether a game was started.
func (e *Engine) Start() bool {
	e.mu.Lock()
	if !e.state.Status.acceptsStart() {
		e.mu.Unlock()
		return false
	}

	e.state = State{
		GameID: uuid.NewString(),
		Record: e.state.Record,
		Status: StatusPlayingBack,
		Speed:  e.cfg.Flash(),
	}
	e.startedAt = e.clock.Now()
	e.appendSignal()
	ep := e.bump()
	e.logger.Debug("game started", "game", e.state.GameID, "speed", e.state.Speed)
	e.publish()

	e.launch(ep, func(ctx context.Context) {
		e.playback(ctx, ep)
	})
	return true
}

// Stop aborts the current game. It is ignored unless a game is running,
// and reports whether the game was stopped.
func (e *Engine) Stop() bool {
	e.mu.Lock()
	if e.state.Status.acceptsStart() {
		e.mu.Unlock()
		return false
	}
	ep := e.endGame(EndReasonAborted)
	e.publish()

	e.halt(ep)
	return true
}

// bump invalidates the running routine's epoch and returns the new one.
// Caller must hold e.mu.
func (e *Engine) bump() uint64 {
	e.epoch++
	return e.epoch
}

// queue records an event for delivery. Caller must hold e.mu.
func (e *Engine) queue(evt Event) {
	e.pending = append(e.pending, evt)
}

// publish releases e.mu and delivers queued events plus a state snapshot.
// Caller must hold e.mu.
func (e *Engine) publish() {
	e.queue(StateChangedEvent{State: e.state.clone()})
	events := e.pending
	e.pending = nil
	observers := slices.Clone(e.observers)

	e.notifyMu.Lock()
	e.mu.Unlock()
	defer e.notifyMu.Unlock()

	for _, evt := range events {
		for _, o := range observers {
			o(evt)
		}
	}
}

// mutate applies fn if ep is still current. fn reports whether it changed
// anything; only then are events published. mutate returns false when the
// epoch is stale, which tells the routine to exit.
func (e *Engine) mutate(ep uint64, fn func(s *State) bool) bool {
	e.mu.Lock()
	if ep != e.epoch {
		e.pending = nil
		e.mu.Unlock()
		return false
	}
	if !fn(&e.state) {
		e.pending = nil
		e.mu.Unlock()
		return true
	}
	e.publish()
	return true
}

// currentEpoch reads the epoch under e.mu.
func (e *Engine) currentEpoch() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.epoch
}

// launch replaces the background routine with fn, launched for epoch ep.
// Between publishing and launching, e.mu is not held; if another command
// moved the epoch on in that window, fn belongs to a finished game and is
// dropped so it cannot replace the newer routine.
func (e *Engine) launch(ep uint64, fn func(ctx context.Context)) {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	if ep != e.currentEpoch() {
		e.logger.Debug("dropping stale routine", "epoch", ep)
		return
	}
	e.stopRoutine()

	ctx, cancel := context.WithCancel(context.Background())
	r := &routine{epoch: ep, cancel: cancel, done: make(chan struct{})}
	e.run = r
	go func() {
		defer close(r.done)
		defer cancel()
		fn(ctx)
	}()
}

// halt cancels the background routine and waits for it to exit, but only
// if it was launched at or before epoch ep. A game started after ep keeps
// its routine.
func (e *Engine) halt(ep uint64) {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	if e.run == nil || e.run.epoch > ep {
		return
	}
	e.stopRoutine()
}

// stopRoutine must be called with e.runMu held.
func (e *Engine) stopRoutine() {
	if e.run == nil {
		return
	}
	e.run.cancel()
	<-e.run.done
	e.run = nil
}

// sleep waits for d on the engine clock or until ctx is cancelled.
func (e *Engine) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := e.clock.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.Chan():
		return nil
	}
}
