package instance

import (
	"math/rand"

	"github.com/katalvlaran/freqassign/internal/rng"
)

// Option customizes a generator.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("instance: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh RNG; seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rng.FromSeed(seed) }
}

// WithCostFn overrides the cost function of Path, Cycle and CompleteGraph.
// Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("instance: WithCostFn(nil)")
	}

	return func(c *config) { c.costFn = fn }
}

// ConstantCost returns a CostFn that ignores the RNG and yields
// base[f mod len(base)] for every node.
func ConstantCost(base ...float64) CostFn {
	if len(base) == 0 {
		panic("instance: ConstantCost()")
	}

	return func(_, f int, _ *rand.Rand) float64 { return base[f%len(base)] }
}

// uniformCost draws U[0, UniformCostMax).
func uniformCost(_, _ int, r *rand.Rand) float64 { return rng.Uniform(r, 0, UniformCostMax) }

// newConfig applies opts over the defaults.
func newConfig(opts []Option) config {
	c := config{costFn: uniformCost}
	for _, opt := range opts {
		opt(&c)
	}
	c.rng = rng.OrDefault(c.rng)

	return c
}
