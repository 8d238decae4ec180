// Package randengine wraps golang.org/x/exp/rand with the distributions the
// simulation needs. Every stochastic decision goes through an Engine so a run
// is fully reproducible from its seed.
package randengine

import (
	"flag"
	"log"
	"sync"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset")
)

// Engine is a seeded random source. The plain methods are not safe for
// concurrent use, the *Safe variants are.
type Engine struct {
	*rand.Rand
	mtx sync.Mutex
}

// New creates an engine from seed plus the optional command line offset.
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// DiscreteDistribution samples an index with probability proportional to its
// weight (not thread-safe).
func (e *Engine) DiscreteDistribution(weight []float64) int32 {
	random := .0
	for _, w := range weight {
		random += w
	}
	random *= e.Float64()
	sum := 0.
	for i, w := range weight {
		sum += w
		if sum > random {
			return int32(i)
		}
	}
	log.Panicf("randengine: DiscreteDistribution: sum: %f random: %f", sum, random)
	return -1
}

// PTrue returns true with probability p (not thread-safe).
func (e *Engine) PTrue(p float64) bool {
	return e.Float64() < p
}

// PTrueSafe returns true with probability p (thread-safe).
func (e *Engine) PTrueSafe(p float64) bool {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.Float64() < p
}

// IntnSafe returns a random int in [0, n) (thread-safe).
func (e *Engine) IntnSafe(n int) int {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.Intn(n)
}

// Float64Safe returns a random float in [0, 1) (thread-safe).
func (e *Engine) Float64Safe() float64 {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.Float64()
}

// DiscreteDistributionSafe is the thread-safe variant of
// DiscreteDistribution.
func (e *Engine) DiscreteDistributionSafe(weight []float64) int32 {
	random := .0
	for _, w := range weight {
		random += w
	}
	random *= e.Float64Safe()
	sum := 0.
	for i, w := range weight {
		sum += w
		if sum > random {
			return int32(i)
		}
	}
	return int32(len(weight))
}
