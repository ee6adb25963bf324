package simon

import "context"

// appendSignal draws one signal and starts the round it defines.
// Caller must hold e.mu.
func (e *Engine) appendSignal() {
	e.state.Sequence = append(e.state.Sequence, NextSignal(e.src))
	e.state.Round = len(e.state.Sequence)
	e.state.Progress = nil
	e.state.Status = StatusPlayingBack
	e.queue(RoundAdvancedEvent{Round: e.state.Round})
}

// advance waits out the feedback pause, extends the sequence and plays it.
func (e *Engine) advance(ctx context.Context, ep uint64) {
	if err := e.sleep(ctx, e.cfg.FeedbackPause()); err != nil {
		return
	}
	ok := e.mutate(ep, func(s *State) bool {
		e.appendSignal()
		e.logger.Debug("round advanced", "game", s.GameID, "round", s.Round, "speed", s.Speed)
		return true
	})
	if !ok {
		return
	}
	e.playback(ctx, ep)
}

// playback reveals the sequence one signal at a time, then hands the turn
// to the player and shows the hint for the newest signal.
func (e *Engine) playback(ctx context.Context, ep uint64) {
	snap := e.State()
	seq, speed := snap.Sequence, snap.Speed
	if len(seq) == 0 {
		return
	}
	gap := e.cfg.Gap(speed)

	for i, sig := range seq {
		ok := e.mutate(ep, func(s *State) bool {
			s.Active = sig
			e.queue(SignalActivatedEvent{Signal: sig, Index: i})
			return true
		})
		if !ok {
			return
		}
		if err := e.sleep(ctx, speed); err != nil {
			return
		}
		ok = e.mutate(ep, func(s *State) bool {
			s.Active = None
			e.queue(SignalDeactivatedEvent{Signal: sig, Index: i})
			return true
		})
		if !ok {
			return
		}
		if i < len(seq)-1 {
			if err := e.sleep(ctx, gap); err != nil {
				return
			}
		}
	}

	newest := seq[len(seq)-1]
	hintFor := e.cfg.HintDuration()
	ok := e.mutate(ep, func(s *State) bool {
		s.Status = StatusAwaitingInput
		s.Progress = nil
		if hintFor > 0 {
			s.Hint = newest
			e.queue(HintEvent{Signal: newest})
		}
		return true
	})
	if !ok || hintFor <= 0 {
		return
	}

	if err := e.sleep(ctx, hintFor); err != nil {
		return
	}
	// Only clear while this round is still being entered; a finished round
	// or an ended game has already cleared it.
	e.mutate(ep, func(s *State) bool {
		if !s.Status.acceptsInput() || s.Hint == None {
			return false
		}
		s.Hint = None
		e.queue(HintEvent{Signal: None})
		return true
	})
}
