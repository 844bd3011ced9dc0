package repair_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/freqassign/interference"
	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/repair"
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

func uniformCosts(n, k int) [][]float64 {
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, k)
	}

	return costs
}

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

func TestRepair_Idempotent(t *testing.T) {
	p := mustProblem(t, 3, 2, [][2]int{{0, 1}, {1, 2}}, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	a := problem.Assignment{0, 1, 0}

	res, err := repair.Repair(p, a, 10)
	require.NoError(t, err)
	assert.Equal(t, a, res.Assignment)
	assert.Zero(t, res.Iterations)
	assert.True(t, res.Valid)
	assert.Equal(t, 1.0+4+5, res.Cost)
	assert.Equal(t, repair.NoteConflictFree, res.Note)
}

func TestRepair_MovesCheaperEndpoint(t *testing.T) {
	tests := []struct {
		name  string
		costs [][]float64
		want  problem.Assignment
	}{
		{"second is cheaper", [][]float64{{0, 5, 9}, {0, 2, 9}}, problem.Assignment{0, 1}},
		{"tie moves first", [][]float64{{0, 5, 9}, {0, 5, 9}}, problem.Assignment{1, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustProblem(t, 2, 3, [][2]int{{0, 1}}, tc.costs)
			in := problem.Assignment{0, 0}

			res, err := repair.Repair(p, in, 5)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Assignment)
			assert.Equal(t, 1, res.Iterations)
			assert.True(t, res.Valid)
			assert.Equal(t, problem.Assignment{0, 0}, in, "input must not be mutated")
		})
	}
}

func TestRepair_WorstConflictFirst(t *testing.T) {
	costs := [][]float64{{1, 9}, {1, 9}, {5, 6}, {5, 8}}
	p := mustProblem(t, 4, 2, [][2]int{{0, 1}, {2, 3}}, costs)

	res, err := repair.Repair(p, problem.Assignment{0, 0, 0, 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, problem.Assignment{0, 0, 1, 0}, res.Assignment)
	assert.Equal(t, 1, res.Conflicts)
	assert.Equal(t, repair.NoteAttemptLimit, res.Note)
}

func TestRepair_ForcedMoveKeepsBest(t *testing.T) {
	// Every forced move on a 2-colored triangle just relocates the conflict.
	p := mustProblem(t, 3, 2, [][2]int{{0, 1}, {1, 2}, {0, 2}}, uniformCosts(3, 2))
	in := problem.Assignment{0, 0, 1}

	res, err := repair.Repair(p, in, 6)
	require.NoError(t, err)
	assert.Equal(t, in, res.Assignment)
	assert.Equal(t, 1, res.Conflicts)
	assert.Equal(t, 6, res.Iterations)
	assert.False(t, res.Valid)
}

func TestRepair_SingleFrequencyStuck(t *testing.T) {
	p := mustProblem(t, 2, 1, [][2]int{{0, 1}}, uniformCosts(2, 1))

	res, err := repair.Repair(p, problem.Assignment{0, 0}, 3)
	require.NoError(t, err)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, repair.NoteStuck, res.Note)
	assert.Equal(t, 1, res.Conflicts)
}

func TestRepair_InvalidInput(t *testing.T) {
	p := mustProblem(t, 2, 2, nil, uniformCosts(2, 2))

	_, err := repair.Repair(p, problem.Assignment{0}, 3)
	assert.ErrorIs(t, err, verify.ErrInvalidAssignment)
	_, err = repair.Repair(p, problem.Assignment{0, 2}, 3)
	assert.ErrorIs(t, err, verify.ErrInvalidAssignment)
}

func TestRepair_MonotoneConflicts(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for trial := 0; trial < 150; trial++ {
		n, k := 2+r.Intn(30), 1+r.Intn(4)
		p, a := randomInstance(t, r, n, k, r.Float64())
		before := verify.ConflictCount(p, a)

		res, err := repair.Repair(p, a, 1+r.Intn(20))
		require.NoError(t, err)

		rep := verify.Verify(p, res.Assignment)
		require.LessOrEqual(t, res.Conflicts, before, "trial %d", trial)
		require.Equal(t, rep.ConflictCount(), res.Conflicts, "trial %d", trial)
		require.Equal(t, rep.Cost, res.Cost, "trial %d", trial)
	}
}

func TestRepair_ColorableWithEnoughFrequencies(t *testing.T) {
	// With k > Δ every chosen conflict has a clean alternative, so each step
	// removes at least one conflict.
	r := rand.New(rand.NewSource(8))
	for trial := 0; trial < 30; trial++ {
		const n = 25
		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r.Float64() < 0.2 {
					edges = append(edges, [2]int{i, j})
				}
			}
		}
		g := interference.MustNew(n)
		for _, e := range edges {
			require.NoError(t, g.Connect(e[0], e[1]))
		}
		k := g.MaxDegree() + 1
		p := mustProblem(t, n, k, edges, uniformCosts(n, k))
		a := make(problem.Assignment, n)

		before := verify.ConflictCount(p, a)
		res, err := repair.Repair(p, a, before)
		require.NoError(t, err)
		assert.True(t, res.Valid, "trial %d", trial)
		assert.LessOrEqual(t, res.Iterations, before)
	}
}

func TestAlternative(t *testing.T) {
	// Node 1 sits between 0 (freq 2) and 2 (freq 1).
	p := mustProblem(t, 3, 3, [][2]int{{0, 1}, {1, 2}}, [][]float64{{0, 0, 0}, {4, 1, 7}, {0, 0, 0}})
	a := problem.Assignment{2, 0, 1}

	f, ok := repair.Alternative(p, a, 1, 2)
	require.True(t, ok)
	assert.Equal(t, 1, f, "the partner's frequency stays available")

	_, ok = repair.Alternative(p, a, 1, -1)
	assert.False(t, ok)
}
