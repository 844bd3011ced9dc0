package instance

import (
	"fmt"

	"github.com/katalvlaran/freqassign/interference"
	"github.com/katalvlaran/freqassign/problem"
)

// Path builds the path 0–1–…–(n−1).
func Path(n, k int, opts ...Option) (*problem.Problem, error) {
	if n < MinNodes {
		return nil, fmt.Errorf("%s: n=%d < %d: %w", MethodPath, n, MinNodes, ErrTooFewNodes)
	}
	g := interference.MustNew(n)
	for i := 0; i+1 < n; i++ {
		_ = g.Connect(i, i+1)
	}

	return finish(MethodPath, g, k, opts)
}

// Cycle builds the ring 0–1–…–(n−1)–0. n must be at least MinCycleNodes.
func Cycle(n, k int, opts ...Option) (*problem.Problem, error) {
	if n < MinCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < %d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewNodes)
	}
	g := interference.MustNew(n)
	for i := 0; i < n; i++ {
		_ = g.Connect(i, (i+1)%n)
	}

	return finish(MethodCycle, g, k, opts)
}

// CompleteGraph builds K_n.
func CompleteGraph(n, k int, opts ...Option) (*problem.Problem, error) {
	if n < MinNodes {
		return nil, fmt.Errorf("%s: n=%d < %d: %w", MethodComplete, n, MinNodes, ErrTooFewNodes)
	}
	g := interference.MustNew(n)
	connectAll(g)

	return finish(MethodComplete, g, k, opts)
}

// connectAll adds every pair i<j.
func connectAll(g *interference.Graph) {
	for i := 0; i < g.N(); i++ {
		for j := i + 1; j < g.N(); j++ {
			_ = g.Connect(i, j)
		}
	}
}

// finish attaches configured costs to g.
func finish(method string, g *interference.Graph, k int, opts []Option) (*problem.Problem, error) {
	cfg := newConfig(opts)
	p, err := problem.New(g, k, tableCosts(g.N(), k, cfg.costFn, cfg.rng))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, nil
}
