package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/freqassign/interference"
	"github.com/katalvlaran/freqassign/localsearch"
	"github.com/katalvlaran/freqassign/problem"
)

func mustProblem(t testing.TB, n, k int, edges [][2]int, costs [][]float64) *problem.Problem {
	t.Helper()
	g := interference.MustNew(n)
	for _, e := range edges {
		require.NoError(t, g.Connect(e[0], e[1]))
	}
	p, err := problem.New(g, k, costs)
	require.NoError(t, err)

	return p
}

// randomInstance draws an Erdős–Rényi instance with integer costs and a
// uniformly random starting assignment.
func randomInstance(t testing.TB, r *rand.Rand, n, k int, density float64) (*problem.Problem, problem.Assignment) {
	t.Helper()
	var edges [][2]int
	costs := make([][]float64, n)
	a := make(problem.Assignment, n)
	for i := 0; i < n; i++ {
		costs[i] = make([]float64, k)
		for f := range costs[i] {
			costs[i][f] = float64(r.Intn(100))
		}
		a[i] = r.Intn(k)
		for j := i + 1; j < n; j++ {
			if r.Float64() < density {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return mustProblem(t, n, k, edges, costs), a
}

// recorder collects the moves reported through Options.OnMove.
type recorder struct{ moves []localsearch.Move }

func (r *recorder) options(base localsearch.Options) localsearch.Options {
	base.OnMove = func(m localsearch.Move) { r.moves = append(r.moves, m) }

	return base
}
