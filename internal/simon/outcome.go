package simon

import (
	"slices"
	"time"
)

// completeRound books a reproduced sequence: record, difficulty and the
// switch back to playback. It returns the epoch for the next round.
// Caller must hold e.mu.
func (e *Engine) completeRound() uint64 {
	s := &e.state
	s.Record = max(s.Record, s.Round)
	s.Speed = e.difficulty.NextSpeed(s.Speed, s.Round)
	s.Status = StatusPlayingBack
	s.Hint = None
	e.queue(RoundCompletedEvent{
		Round:  s.Round,
		Record: s.Record,
		Speed:  s.Speed.Milliseconds(),
	})
	e.logger.Debug("round completed", "game", s.GameID, "round", s.Round, "record", s.Record, "speed", s.Speed)
	return e.bump()
}

// endGame moves to game over, keeping the last sequence for display.
// It returns the epoch that ends the game. Caller must hold e.mu.
func (e *Engine) endGame(reason EndReason) uint64 {
	s := &e.state
	completed := e.completedRounds()
	s.Status = StatusGameOver
	s.Reason = reason
	s.Hint = None
	s.Active = None
	ep := e.bump()

	e.queue(GameOverEvent{
		GameID:     s.GameID,
		FinalRound: s.Round,
		Completed:  completed,
		Record:     s.Record,
		Reason:     reason,
		Speed:      s.Speed,
		Duration:   e.clock.Since(e.startedAt),
	})
	e.logger.Debug("game over", "game", s.GameID, "round", s.Round, "completed", completed, "record", s.Record, "reason", reason)
	return ep
}

// completedRounds counts the rounds reproduced in the current game.
// The current round counts only once its whole sequence was matched, which
// is the case while the feedback pause runs. Caller must hold e.mu.
func (e *Engine) completedRounds() int {
	s := &e.state
	if s.Round == 0 {
		return 0
	}
	if len(s.Progress) == len(s.Sequence) && slices.Equal(s.Progress, s.Sequence) {
		return s.Round
	}
	return s.Round - 1
}

// Result is the summary of a finished game, suitable for persistence.
type Result struct {
	GameID     string
	FinalRound int
	Completed  int // Rounds fully reproduced
	Record     int
	Reason     EndReason
	Speed      time.Duration
	Duration   time.Duration
}

// ResultFromEvent builds a Result from the terminal event of a game.
func ResultFromEvent(evt GameOverEvent) Result {
	return Result{
		GameID:     evt.GameID,
		FinalRound: evt.FinalRound,
		Completed:  evt.Completed,
		Record:     evt.Record,
		Reason:     evt.Reason,
		Speed:      evt.Speed,
		Duration:   evt.Duration,
	}
}

// ResultRecorder persists finished games.
type ResultRecorder interface {
	RecordResult(r Result) error
}
