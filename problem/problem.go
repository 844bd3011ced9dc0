package problem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/freqassign/interference"
)

// Problem is an immutable frequency-assignment instance.
type Problem struct {
	graph *interference.Graph
	k     int
	costs *mat.Dense // n×k, row i = node i
}

// New validates and bundles an instance.
//
// Contract:
//   - g is non-nil and has n ≥ 1 nodes.
//   - k ≥ 1.
//   - costs has exactly n rows of exactly k finite, non-negative values.
//
// The graph is cloned so later mutations by the caller cannot break the
// instance.
//
// Complexity: O(n·k + m).
func New(g *interference.Graph, k int, costs [][]float64) (*Problem, error) {
	// Stage 1: structural arguments.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.N()
	if n < 1 {
		return nil, ErrNoNodes
	}
	if k < 1 {
		return nil, fmt.Errorf("New: k=%d: %w", k, ErrNoFrequencies)
	}

	// Stage 2: matrix shape and values, flattened row-major for mat.NewDense.
	if len(costs) != n {
		return nil, fmt.Errorf("New: %d cost rows for %d nodes: %w", len(costs), n, ErrCostShape)
	}
	data := make([]float64, 0, n*k)

	var (
		i, f int
		c    float64
	)
	for i = 0; i < n; i++ {
		if len(costs[i]) != k {
			return nil, fmt.Errorf("New: row %d has %d entries, want %d: %w", i, len(costs[i]), k, ErrCostShape)
		}
		for f = 0; f < k; f++ {
			c = costs[i][f]
			if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
				return nil, fmt.Errorf("New: costs[%d][%d]=%v: %w", i, f, c, ErrBadCost)
			}
			data = append(data, c)
		}
	}

	return &Problem{
		graph: g.Clone(),
		k:     k,
		costs: mat.NewDense(n, k, data),
	}, nil
}

// N returns the number of nodes.
func (p *Problem) N() int { return p.graph.N() }

// K returns the number of frequencies.
func (p *Problem) K() int { return p.k }

// Graph returns the interference graph. Treat it as read-only.
func (p *Problem) Graph() *interference.Graph { return p.graph }

// Cost returns costs[i][f]. Indices must be in range.
func (p *Problem) Cost(i, f int) float64 { return p.costs.At(i, f) }

// CostRow returns a copy of node i's cost row.
func (p *Problem) CostRow(i int) []float64 { return mat.Row(nil, i, p.costs) }

// Costs returns a deep copy of the whole cost matrix as [][]float64.
func (p *Problem) Costs() [][]float64 {
	out := make([][]float64, p.N())
	for i := range out {
		out[i] = p.CostRow(i)
	}

	return out
}

// CostMatrix returns a copy of the cost matrix as a gonum Dense.
func (p *Problem) CostMatrix() *mat.Dense { return mat.DenseCopyOf(p.costs) }

// Cheapest returns node i's cheapest frequency and its cost; ties go to the
// lowest frequency index.
func (p *Problem) Cheapest(i int) (int, float64) {
	row := p.costs.RawRowView(i)
	best, bestCost := 0, row[0]
	for f := 1; f < p.k; f++ {
		if row[f] < bestCost {
			best, bestCost = f, row[f]
		}
	}

	return best, bestCost
}

// CostSpread returns maxCost(i) − minCost(i).
func (p *Problem) CostSpread(i int) float64 {
	row := p.costs.RawRowView(i)
	lo, hi := row[0], row[0]
	for _, c := range row[1:] {
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}

	return hi - lo
}

// NewAssignment returns an assignment of length n with every node on
// frequency 0.
func (p *Problem) NewAssignment() Assignment { return make(Assignment, p.N()) }
