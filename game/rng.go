package game

import (
	"math/rand"
	"time"
)

// Random is the randomness the simulation draws from
type Random interface {
	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
}

// PRNG wraps a seeded math/rand source so a run can be replayed
type PRNG struct {
	rng *rand.Rand
}

// NewPRNG creates a generator with the given seed.
// A zero seed uses the current time.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a number in [0.0, 1.0)
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// Chance reports true with probability prob
func Chance(r Random, prob float64) bool {
	return r.Float64() < prob
}

// ScriptedRandom replays a fixed sequence of draws, cycling when exhausted.
// Used to force specific rolls in tests and demos.
type ScriptedRandom struct {
	Values []float64
	next   int
}

// Float64 returns the next scripted value
func (s *ScriptedRandom) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
