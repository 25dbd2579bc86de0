package nxcube

import "math/rand"

// Option configures Scrambler behavior.
type Option func(*Scrambler)

// WithSeed seeds the scrambler's random source for reproducible
// scrambles.
func WithSeed(seed int64) Option {
	return func(s *Scrambler) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies a random source directly. Useful for tests that
// need full control over the draw sequence.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scrambler) {
		s.rng = rng
	}
}
