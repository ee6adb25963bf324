package simon

import (
	"math/rand"
	"sync"
)

// Source is the entropy used to draw signals.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// lockedSource guards a *rand.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// FixedSource replays a fixed list of signals, wrapping around at the end.
// Used for tests and scripted demos.
type FixedSource struct {
	mu      sync.Mutex
	signals []Signal
	next    int
}

// NewFixedSource creates a source that yields signals in order.
func NewFixedSource(signals ...Signal) *FixedSource {
	return &FixedSource{signals: signals}
}

// Intn returns the index of the next scripted signal.
func (f *FixedSource) Intn(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.signals) == 0 {
		return 0
	}
	s := f.signals[f.next%len(f.signals)]
	f.next++
	if !s.Valid() {
		return 0
	}
	return (int(s) - int(Red)) % n
}

// NextSignal draws a signal uniformly from src.
func NextSignal(src Source) Signal {
	return Red + Signal(src.Intn(SignalCount))
}
