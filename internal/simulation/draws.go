package simulation

import "math/rand"

// DrawSource supplies the independent random draws consumed by a single
// path. Implementations are not required to be safe for concurrent use;
// the engine hands each path its own source.
type DrawSource interface {
	// Uniform returns a draw from [0, 1).
	Uniform() float64
	// Normal returns a draw from N(mean, sd).
	Normal(mean, sd float64) float64
}

type seededSource struct {
	rng *rand.Rand
}

// NewSource returns a deterministic DrawSource for the given seed.
func NewSource(seed int64) DrawSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Uniform() float64 {
	return s.rng.Float64()
}

func (s *seededSource) Normal(mean, sd float64) float64 {
	return mean + sd*s.rng.NormFloat64()
}
