package instance

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/freqassign/interference"
	"github.com/katalvlaran/freqassign/internal/rng"
	"github.com/katalvlaran/freqassign/problem"
)

// Random samples a problem with n nodes, k frequencies and edge probability
// density. Edges are drawn first, then costs node by node.
//
// Complexity: O(n² + n·k).
func Random(n, k int, density float64, opts ...Option) (*problem.Problem, error) {
	if n < MinNodes {
		return nil, fmt.Errorf("%s: n=%d < %d: %w", MethodRandom, n, MinNodes, ErrTooFewNodes)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%s: density=%.6f not in [0,1]: %w", MethodRandom, density, ErrInvalidDensity)
	}
	cfg := newConfig(opts)

	g := interference.MustNew(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < density {
				_ = g.Connect(i, j)
			}
		}
	}

	p, err := problem.New(g, k, preferredCosts(n, k, cfg.rng))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandom, err)
	}

	return p, nil
}

// preferredCosts gives every node one cheap preferred frequency.
func preferredCosts(n, k int, r *rand.Rand) [][]float64 {
	if k < 1 {
		return nil
	}
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, k)
		pref := r.Intn(k)
		for f := range costs[i] {
			if f == pref {
				costs[i][f] = rng.Uniform(r, PreferredCostMin, PreferredCostMax)
			} else {
				costs[i][f] = rng.Uniform(r, OtherCostMin, OtherCostMax)
			}
		}
	}

	return costs
}

// Special builds one of the structured families with U[0, 100) costs.
//
// Complexity: O(n² + n·k).
func Special(kind Kind, n, k int, opts ...Option) (*problem.Problem, error) {
	if n < MinNodes {
		return nil, fmt.Errorf("%s(%s): n=%d < %d: %w", MethodSpecial, kind, n, MinNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts)
	g := interference.MustNew(n)

	switch kind {
	case Tree:
		for i := 1; i < n; i++ {
			_ = g.Connect(i, cfg.rng.Intn(i))
		}
	case Bipartite:
		half := n / 2
		for i := 0; i < half; i++ {
			for j := half; j < n; j++ {
				if cfg.rng.Float64() < BipartiteEdgeProb {
					_ = g.Connect(i, j)
				}
			}
		}
	case Complete:
		connectAll(g)
	default:
		return nil, fmt.Errorf("%s: %v: %w", MethodSpecial, kind, ErrUnknownKind)
	}

	p, err := problem.New(g, k, tableCosts(n, k, uniformCost, cfg.rng))
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", MethodSpecial, kind, err)
	}

	return p, nil
}

// tableCosts evaluates fn row-major.
func tableCosts(n, k int, fn CostFn, r *rand.Rand) [][]float64 {
	if k < 1 {
		return nil
	}
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, k)
		for f := range costs[i] {
			costs[i][f] = fn(i, f, r)
		}
	}

	return costs
}
