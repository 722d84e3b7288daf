// Package model contains domain models passed between layers.
package model

// DefaultScoreCeiling is the exclusive upper bound of a generated score.
const DefaultScoreCeiling = 100

// ScoreRecord is one synthetic data point written into a virtual-user context.
// Fields mirror the JSON body later scenario steps template from vars.data.
type ScoreRecord struct {
	Timestamp int64 `json:"timestamp"` // milliseconds since the Unix epoch
	Score     int   `json:"score"`     // integer in [0, DefaultScoreCeiling)
}

// Valid reports whether r satisfies the record invariants for the default ceiling.
func (r ScoreRecord) Valid() bool {
	return r.ValidFor(DefaultScoreCeiling)
}

// ValidFor reports whether r satisfies the record invariants for ceiling.
func (r ScoreRecord) ValidFor(ceiling int) bool {
	return r.Timestamp >= 0 && r.Score >= 0 && r.Score < ceiling
}
