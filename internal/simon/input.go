package simon

import "context"

// Submit records a player tap. It is ignored unless the engine is waiting
// for input, and reports whether the tap was accepted.
func (e *Engine) Submit(sig Signal) bool {
	if !sig.Valid() {
		return false
	}

	e.mu.Lock()
	s := &e.state
	if !s.Status.acceptsInput() || len(s.Progress) >= len(s.Sequence) {
		e.mu.Unlock()
		return false
	}

	s.Progress = append(s.Progress, sig)
	s.Status = StatusValidating
	if s.Hint != None {
		s.Hint = None
		e.queue(HintEvent{Signal: None})
	}

	idx := len(s.Progress) - 1
	switch {
	case s.Progress[idx] != s.Sequence[idx]:
		e.logger.Debug("wrong signal", "game", s.GameID, "round", s.Round, "index", idx,
			"want", s.Sequence[idx], "got", sig)
		ep := e.endGame(EndReasonMismatch)
		e.publish()
		e.halt(ep)

	case len(s.Progress) == len(s.Sequence):
		ep := e.completeRound()
		e.publish()
		e.launch(ep, func(ctx context.Context) {
			e.advance(ctx, ep)
		})

	default:
		s.Status = StatusAwaitingInput
		e.publish()
	}
	return true
}
