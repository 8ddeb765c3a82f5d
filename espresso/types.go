package espresso

// RandomSource abstracts the single method the RandomMincov variant needs,
// letting tests supply a deterministic stand-in instead of a real PRNG.
type RandomSource interface {
	Intn(n int) int
}

// Option configures Expand/MakeSparse behavior via functional arguments,
// matching the bfs.Option / dijkstra.Option pattern used throughout the
// teacher repo.
type Option func(*Options)

// Options holds the tunables spec.md calls out by name.
type Options struct {
	// MincovRowGuard bounds the unravelled row count mincov will accept
	// before bailing to the most_frequent heuristic branch (spec.md §4.F
	// step 2 default: 500).
	MincovRowGuard int

	// RandomMincov enables the documented-but-not-default variant of
	// mincov's heuristic branch (spec.md §4.F, §9): instead of
	// mostFrequent's densest-part heuristic, a uniformly random free part
	// is chosen via Random. Default false (deterministic).
	RandomMincov bool

	// Random supplies randomness for the RandomMincov variant. Required
	// only when RandomMincov is true.
	Random RandomSource
}

// DefaultOptions returns an Options with spec.md's default guard (500)
// and RandomMincov disabled.
func DefaultOptions() Options {
	return Options{
		MincovRowGuard: 500,
	}
}

// WithMincovRowGuard overrides the default row-count guard used by mincov.
func WithMincovRowGuard(n int) Option {
	return func(o *Options) { o.MincovRowGuard = n }
}

// WithRandomMincov enables the RANDOM_MINCOV variant with the given
// random source (spec.md §4.F, §9). It does not panic when rnd is nil:
// Option itself cannot fail, so the nil check lives in Expand, which
// returns ErrNilRandomSource.
func WithRandomMincov(rnd RandomSource) Option {
	return func(o *Options) {
		o.RandomMincov = true
		o.Random = rnd
	}
}
