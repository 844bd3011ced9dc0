package experiment_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/freqassign/experiment"
	"github.com/katalvlaran/freqassign/greedy"
	"github.com/katalvlaran/freqassign/instance"
	"github.com/katalvlaran/freqassign/internal/metrics"
	"github.com/katalvlaran/freqassign/internal/rng"
	"github.com/katalvlaran/freqassign/localsearch"
	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/verify"
)

func pathProblem(t *testing.T) *problem.Problem {
	t.Helper()
	p, err := instance.Path(4, 2, instance.WithCostFn(instance.ConstantCost(1, 3)))
	require.NoError(t, err)

	return p
}

func randomProblem(t *testing.T, n, k int, seed int64) *problem.Problem {
	t.Helper()
	p, err := instance.Random(n, k, 0.3, instance.WithSeed(seed))
	require.NoError(t, err)

	return p
}

func feasiblePipeline(s greedy.Strategy) experiment.Pipeline {
	pl := experiment.DefaultPipeline()
	pl.Strategy, pl.GreedyAttempts = s, 1
	pl.Method = localsearch.Feasible

	return pl
}

func TestDefaultPipeline(t *testing.T) {
	pl := experiment.DefaultPipeline()

	assert.Equal(t, greedy.Mixed, pl.Strategy)
	assert.Equal(t, experiment.DefaultGreedyAttempts, pl.GreedyAttempts)
	assert.Equal(t, localsearch.ConflictTolerant, pl.Method)
	assert.Equal(t, experiment.DefaultIterations, pl.Search.MaxIter)
	assert.Equal(t, "hill-conflicts", pl.Label())

	pl.Restarts = 2
	assert.Equal(t, experiment.MethodRestart, pl.Label())
}

func TestRun_Path(t *testing.T) {
	out, err := experiment.Run(pathProblem(t), feasiblePipeline(greedy.Degree), nil)
	require.NoError(t, err)

	_, err = uuid.Parse(out.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Nodes)
	assert.Equal(t, 2, out.Frequencies)
	assert.Equal(t, 3, out.Edges)
	assert.Equal(t, 2, out.MaxDegree)
	assert.Equal(t, "degree", out.Strategy)
	assert.Equal(t, "hill", out.Method)

	assert.Equal(t, problem.Assignment{1, 0, 1, 0}, out.Assignment)
	assert.True(t, out.Initial.Valid)
	assert.InDelta(t, 8.0, out.Initial.Cost, 1e-12)
	assert.Equal(t, "greedy: degree", out.Initial.Note)
	assert.InDelta(t, 8.0, out.Final.Cost, 1e-12)
	assert.Equal(t, localsearch.NoteLocalOptimum, out.Final.Note)
	assert.Zero(t, out.Improvement)
	assert.Equal(t, 2, out.Analysis.Used)
}

func TestRun_AgreesWithVerifier(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		p := randomProblem(t, 25, 3, seed)
		for _, m := range localsearch.Methods {
			pl := experiment.DefaultPipeline()
			pl.Method = m
			pl.Search.MaxIter = 100

			out, err := experiment.Run(p, pl, rng.FromSeed(seed))
			require.NoError(t, err)

			rep := verify.Verify(p, out.Assignment)
			assert.InDelta(t, rep.Cost, out.Final.Cost, 1e-9)
			assert.Equal(t, rep.Valid, out.Final.Valid)
			assert.Equal(t, rep.ConflictCount(), out.Final.Conflicts)
			assert.Equal(t, rep.Cost, out.Analysis.Cost)
			if out.Initial.Cost > 0 {
				want := (out.Initial.Cost - out.Final.Cost) / out.Initial.Cost * 100
				assert.InDelta(t, want, out.Improvement, 1e-9)
			}
		}
	}
}

func TestRun_FeasibleNeverWorse(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		p := randomProblem(t, 30, 4, seed)
		out, err := experiment.Run(p, feasiblePipeline(greedy.MinCost), rng.FromSeed(seed))
		require.NoError(t, err)

		assert.LessOrEqual(t, out.Final.Cost, out.Initial.Cost+1e-9)
		assert.LessOrEqual(t, out.Final.Conflicts, out.Initial.Conflicts)
		assert.GreaterOrEqual(t, out.Improvement, -1e-9)
	}
}

func TestRun_Deterministic(t *testing.T) {
	p := randomProblem(t, 30, 4, 9)
	pl := experiment.DefaultPipeline()
	pl.Search.MaxIter = 150

	a, err := experiment.Run(p, pl, rng.FromSeed(5))
	require.NoError(t, err)
	b, err := experiment.Run(p, pl, rng.FromSeed(5))
	require.NoError(t, err)

	assert.Equal(t, a.Assignment, b.Assignment)
	assert.Equal(t, a.Final.Cost, b.Final.Cost)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRun_Restarts(t *testing.T) {
	p := randomProblem(t, 20, 4, 3)
	pl := experiment.DefaultPipeline()
	pl.Restarts = 3
	pl.Search.MaxIter = 50

	out, err := experiment.Run(p, pl, rng.FromSeed(3))
	require.NoError(t, err)
	assert.Equal(t, experiment.MethodRestart, out.Method)
	assert.Contains(t, out.Final.Note, "best of 3 restarts")
}

func TestRun_InvalidPipeline(t *testing.T) {
	p := pathProblem(t)

	pl := experiment.DefaultPipeline()
	pl.Restarts = -1
	_, err := experiment.Run(p, pl, nil)
	assert.ErrorIs(t, err, experiment.ErrInvalidPipeline)

	pl = experiment.DefaultPipeline()
	pl.Search.TabuTenure = 0
	_, err = experiment.Run(p, pl, nil)
	assert.ErrorIs(t, err, experiment.ErrInvalidPipeline)
	assert.ErrorIs(t, err, localsearch.ErrInvalidOptions)

	pl = experiment.DefaultPipeline()
	pl.Method = localsearch.Method(9)
	_, err = experiment.Run(p, pl, nil)
	assert.ErrorIs(t, err, localsearch.ErrUnknownMethod)
}

func TestRunner_MetricsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	col := metrics.New()
	rn := experiment.Runner{Logger: zap.New(core), Metrics: col}

	p := randomProblem(t, 30, 4, 12)
	out, err := rn.Run(p, feasiblePipeline(greedy.Random), rng.FromSeed(12))
	require.NoError(t, err)

	valid := "false"
	if out.Final.Valid {
		valid = "true"
	}
	assert.InDelta(t, 1, testutil.ToFloat64(col.Runs.WithLabelValues("hill", valid)), 0)
	assert.InDelta(t, float64(out.Final.Iterations), testutil.ToFloat64(col.Moves.WithLabelValues("hill")), 0)
	assert.InDelta(t, float64(out.Final.Conflicts), testutil.ToFloat64(col.Conflicts.WithLabelValues("hill")), 0)

	entries := logs.FilterMessage("run finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, out.ID, fields["run_id"])
	assert.Equal(t, "hill", fields["method"])
	assert.Equal(t, out.Final.Cost, fields["final_cost"])
}

func TestRunner_MovesReachUserHook(t *testing.T) {
	var seen int
	pl := feasiblePipeline(greedy.MinCost)
	pl.Search.OnMove = func(localsearch.Move) { seen++ }
	col := metrics.New()

	out, err := experiment.Runner{Metrics: col}.Run(randomProblem(t, 30, 4, 21), pl, nil)
	require.NoError(t, err)

	assert.Equal(t, out.Final.Iterations, seen)
	assert.InDelta(t, float64(seen), testutil.ToFloat64(col.Moves.WithLabelValues("hill")), 0)
}

func ExampleRun() {
	p, _ := instance.Path(4, 2, instance.WithCostFn(instance.ConstantCost(1, 3)))
	pl := experiment.DefaultPipeline()
	pl.Strategy, pl.GreedyAttempts = greedy.Degree, 1
	pl.Method = localsearch.Feasible

	out, _ := experiment.Run(p, pl, nil)
	fmt.Println(out.Assignment, out.Final.Valid, out.Final.Cost, out.Improvement)
	// Output: [1 0 1 0] true 8 0
}
