package scoring

import (
	"math/rand/v2"
	"sync"
	"time"
)

// seedStream is mixed into the second PCG word so one seed yields one stream.
const seedStream = 0x9e3779b97f4a7c15

// Clock reads wall-clock time.
type Clock interface {
	Now() time.Time
}

// RandomSource yields uniform values in [0, 1). Implementations must be
// safe for concurrent use; one Generator serves many virtual users.
type RandomSource interface {
	Float64() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// processSource uses the runtime-seeded top-level generator.
type processSource struct{}

func (processSource) Float64() float64 { return rand.Float64() } //nolint:gosec // synthetic load data, not secrets

// SeededSource is a deterministic PCG stream guarded by a mutex.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a reproducible source for seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{
		rng: rand.New(rand.NewPCG(seed, seed^seedStream)), //nolint:gosec // deterministic seed for reproducible fixtures
	}
}

// Float64 implements RandomSource.
func (s *SeededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
