package scoring

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithClock sets the wall-clock source used for record timestamps.
func WithClock(clock Clock) Option {
	return func(g *Generator) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// WithRandomSource sets the uniform [0, 1) source used for scores.
func WithRandomSource(src RandomSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.random = src
		}
	}
}

// WithSeed switches to a deterministic source. A zero seed keeps the
// process-wide source.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.random = NewSeededSource(seed)
		}
	}
}

// WithScoreCeiling sets the exclusive upper bound for scores.
func WithScoreCeiling(ceiling int) Option {
	return func(g *Generator) {
		if ceiling > 0 {
			g.ceiling = ceiling
		}
	}
}
