package greedy_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/freqassign/greedy"
	"github.com/katalvlaran/freqassign/internal/rng"
	"github.com/katalvlaran/freqassign/interference"
	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/verify"
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

func randomProblem(t testing.TB, r *rand.Rand, n, k int, density float64) *problem.Problem {
	t.Helper()
	var edges [][2]int
	costs := make([][]float64, n)
	for i := 0; i < n; i++ {
		costs[i] = make([]float64, k)
		for f := range costs[i] {
			costs[i][f] = float64(r.Intn(100))
		}
		for j := i + 1; j < n; j++ {
			if r.Float64() < density {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return mustProblem(t, n, k, edges, costs)
}

func TestConstruct_ShapeAndRange(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		n, k := 1+r.Intn(40), 1+r.Intn(5)
		p := randomProblem(t, r, n, k, r.Float64())
		for _, s := range greedy.Strategies {
			a := greedy.Construct(p, s, rng.FromSeed(int64(trial)))
			require.Len(t, a, n)
			for i, f := range a {
				require.True(t, f >= 0 && f < k, "trial %d %s node %d=%d", trial, s, i, f)
			}
			_, structural := verify.Verify(p, a).FirstStructural()
			require.False(t, structural)
		}
	}
}

// Scenario B: a 2-colorable path whose parity coloring is also the cheapest.
func TestConstruct_PathTwoColors(t *testing.T) {
	costs := [][]float64{{0, 1}, {1, 0}, {0, 1}, {1, 0}}
	p := mustProblem(t, 4, 2, [][2]int{{0, 1}, {1, 2}, {2, 3}}, costs)

	for _, s := range greedy.Strategies {
		for seed := int64(0); seed < 10; seed++ {
			a := greedy.Construct(p, s, rng.FromSeed(seed))
			rep := verify.Verify(p, a)
			assert.True(t, rep.Valid, "%s seed %d: %v", s, seed, a)
			assert.Equal(t, 2, verify.Analyze(p, a, 0).Used)
		}
	}
}

// Scenario C: isolated nodes with a single frequency.
func TestConstruct_IsolatedSingleFrequency(t *testing.T) {
	p := mustProblem(t, 2, 1, nil, [][]float64{{3}, {5}})

	for _, s := range greedy.Strategies {
		a := greedy.Construct(p, s, nil)
		assert.Equal(t, problem.Assignment{0, 0}, a)
		rep := verify.Verify(p, a)
		assert.True(t, rep.Valid)
		assert.Equal(t, 8.0, rep.Cost)
		assert.Zero(t, rep.ConflictCount())
	}
}

// Scenario A: the constructor can only produce invalid 2-colorings of K3.
func TestConstruct_TriangleFallback(t *testing.T) {
	costs := [][]float64{{1, 9}, {1, 9}, {5, 3}}
	p := mustProblem(t, 3, 2, [][2]int{{0, 1}, {1, 2}, {0, 2}}, costs)

	a := greedy.Construct(p, greedy.Degree, nil)
	assert.Equal(t, problem.Assignment{0, 1, 1}, a, "node 2 ties on clashes and takes the cheaper frequency")

	for _, s := range greedy.Strategies {
		assert.False(t, verify.Verify(p, greedy.Construct(p, s, rng.FromSeed(3))).Valid)
	}
}

func TestConstruct_FallbackPrefersFewerConflicts(t *testing.T) {
	// Hub 0 is processed last under MinCost and sees leaves on {0, 0, 1}.
	costs := [][]float64{{50, 90}, {1, 5}, {1, 5}, {5, 2}}
	p := mustProblem(t, 4, 2, [][2]int{{0, 1}, {0, 2}, {0, 3}}, costs)

	a := greedy.Construct(p, greedy.MinCost, nil)
	assert.Equal(t, problem.Assignment{1, 0, 0, 1}, a)
	assert.Equal(t, 1, verify.ConflictCount(p, a))
}

func TestConstruct_RandomIsSeeded(t *testing.T) {
	p := randomProblem(t, rand.New(rand.NewSource(2)), 30, 3, 0.3)

	a1 := greedy.Construct(p, greedy.Random, rng.FromSeed(99))
	a2 := greedy.Construct(p, greedy.Random, rng.FromSeed(99))
	assert.Equal(t, a1, a2)
}

func TestConstructWithRestarts(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	p := randomProblem(t, r, 25, 4, 0.25)

	res := greedy.ConstructWithRestarts(p, 8, rng.FromSeed(1))
	rep := verify.Verify(p, res.Assignment)
	assert.Equal(t, rep.Valid, res.Valid)
	assert.Equal(t, rep.Cost, res.Cost)
	assert.Equal(t, rep.ConflictCount(), res.Conflicts)
	assert.Equal(t, 8, res.Iterations)
	assert.Contains(t, res.Note, "best of 8 attempts")

	// The winner is at least as good as every deterministic strategy.
	for _, s := range []greedy.Strategy{greedy.Degree, greedy.MinCost, greedy.Mixed} {
		other := verify.Verify(p, greedy.Construct(p, s, nil))
		assert.False(t, verify.Better(other, rep), "%s beats the restart winner", s)
	}
}

func TestConstructWithRestarts_ClampsAttempts(t *testing.T) {
	p := mustProblem(t, 2, 1, nil, [][]float64{{3}, {5}})
	res := greedy.ConstructWithRestarts(p, 0, nil)

	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, "best of 1 attempts: degree", res.Note)
	assert.True(t, res.Valid)
}

func TestParseStrategy(t *testing.T) {
	tests := map[string]greedy.Strategy{
		"degree":    greedy.Degree,
		"GRADO":     greedy.Degree,
		"minCost":   greedy.MinCost,
		"costo":     greedy.MinCost,
		" mixed ":   greedy.Mixed,
		"mixto":     greedy.Mixed,
		"random":    greedy.Random,
		"aleatorio": greedy.Random,
	}
	for in, want := range tests {
		got, err := greedy.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := greedy.ParseStrategy("dsatur")
	assert.ErrorIs(t, err, greedy.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(9)", greedy.Strategy(9).String())
}

func ExampleConstruct() {
	g := interference.MustNew(3)
	_ = g.Connect(0, 1)
	_ = g.Connect(1, 2)
	p, _ := problem.New(g, 2, [][]float64{{1, 4}, {1, 4}, {1, 4}})

	a := greedy.Construct(p, greedy.Degree, nil)
	rep := verify.Verify(p, a)
	fmt.Println(a, rep.Valid, rep.Cost)
	// Output: [1 0 1] true 9
}
