// Package scoring generates the synthetic score records load-test
// scenarios send as request payloads.
package scoring

import (
	"math"

	"github.com/okian/scorehook/internal/domain/model"
)

// Generator produces ScoreRecords from an injected clock and random source.
// It keeps no state between calls and is safe for concurrent use as long as
// its sources are.
type Generator struct {
	clock   Clock
	random  RandomSource
	ceiling int
}

// NewGenerator creates a generator reading the system clock and the
// process-wide random source unless overridden by options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:   systemClock{},
		random:  processSource{},
		ceiling: model.DefaultScoreCeiling,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Ceiling returns the exclusive upper bound of generated scores.
func (g *Generator) Ceiling() int {
	return g.ceiling
}

// Generate returns a fresh record stamped with the current time.
func (g *Generator) Generate() model.ScoreRecord {
	ts := g.clock.Now().UnixMilli()
	if ts < 0 {
		ts = 0
	}
	return model.ScoreRecord{
		Timestamp: ts,
		Score:     g.scale(g.random.Float64()),
	}
}

// CreateRandomScore is the scenario step: it overwrites vu.Vars["data"] with a
// fresh record and then calls done once before returning. The second argument
// is the harness events handle, accepted for the call signature and never touched. A context without vars is
// rejected before anything is written and done is not called.
func (g *Generator) CreateRandomScore(vu *model.Context, _ any, done func()) error {
	if vu == nil {
		return ErrNilContext
	}
	if vu.Vars == nil {
		return ErrNilVars
	}

	vu.Vars[model.DataKey] = g.Generate()

	if done != nil {
		done()
	}
	return nil
}

// scale floors r*ceiling and clamps into [0, ceiling) so a misbehaving
// source cannot break the score invariant.
func (g *Generator) scale(r float64) int {
	if math.IsNaN(r) {
		return 0
	}
	score := math.Floor(r * float64(g.ceiling))
	return int(math.Max(0, math.Min(float64(g.ceiling-1), score)))
}
