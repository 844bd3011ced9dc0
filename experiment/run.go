package experiment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/freqassign/greedy"
	"github.com/katalvlaran/freqassign/internal/metrics"
	"github.com/katalvlaran/freqassign/internal/rng"
	"github.com/katalvlaran/freqassign/localsearch"
	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/restart"
	"github.com/katalvlaran/freqassign/verify"
)

// Runner executes pipelines. The zero value is usable: it logs nowhere,
// records no metrics and lists DefaultTopK nodes in each analysis.
type Runner struct {
	Logger  *zap.Logger
	Metrics *metrics.Collector
	TopK    int
}

func (rn Runner) logger() *zap.Logger {
	if rn.Logger == nil {
		return zap.NewNop()
	}

	return rn.Logger
}

func (rn Runner) topK() int {
	if rn.TopK <= 0 {
		return DefaultTopK
	}

	return rn.TopK
}

// Run executes pl on p with the zero Runner.
func Run(p *problem.Problem, pl Pipeline, r *rand.Rand) (Outcome, error) {
	return Runner{}.Run(p, pl, r)
}

// Run executes pl on p, drawing every random choice from r (nil selects the
// default seed).
//
// Complexity: greedy O(a·(n log n + n·k + m)) plus the search stage's cost.
func (rn Runner) Run(p *problem.Problem, pl Pipeline, r *rand.Rand) (Outcome, error) {
	if err := pl.validate(); err != nil {
		return Outcome{}, fmt.Errorf("Run: %w", err)
	}

	var (
		id      = uuid.NewString()
		label   = pl.Label()
		log     = rn.logger().With(zap.String("run_id", id), zap.String("method", label))
		started = time.Now()
	)
	r = rng.OrDefault(r)

	initial := construct(p, pl, r)
	greedyTime := time.Since(started)
	log.Debug("greedy finished",
		zap.Float64("cost", initial.Cost),
		zap.Bool("valid", initial.Valid),
		zap.Int("conflicts", initial.Conflicts),
	)

	searchStarted := time.Now()
	final, err := rn.search(p, pl, initial.Assignment, r, log)
	if err != nil {
		return Outcome{}, fmt.Errorf("Run: %s: %w", label, err)
	}
	searchTime := time.Since(searchStarted)

	an := verify.Analyze(p, final.Assignment, rn.topK())
	out := Outcome{
		ID:          id,
		Nodes:       p.N(),
		Frequencies: p.K(),
		Edges:       p.Graph().EdgeCount(),
		Density:     p.Graph().Density(),
		MaxDegree:   p.Graph().MaxDegree(),
		Strategy:    strategyLabel(pl),
		Method:      label,
		Initial:     stage(initial, greedyTime),
		Final:       stage(final, searchTime),
		Improvement: improvement(initial.Cost, final.Cost),
		Seconds:     time.Since(started).Seconds(),
		Assignment:  final.Assignment,
		Analysis:    an,
	}

	if rn.Metrics != nil {
		rn.Metrics.ObserveRun(label, final.Valid, final.Cost, final.Conflicts, time.Since(started))
	}
	log.Info("run finished",
		zap.Int("nodes", out.Nodes),
		zap.Int("frequencies", out.Frequencies),
		zap.Float64("initial_cost", out.Initial.Cost),
		zap.Float64("final_cost", out.Final.Cost),
		zap.Bool("valid", out.Final.Valid),
		zap.Int("conflicts", out.Final.Conflicts),
		zap.Float64("improvement_pct", out.Improvement),
	)

	return out, nil
}

// construct runs the greedy stage.
func construct(p *problem.Problem, pl Pipeline, r *rand.Rand) problem.Result {
	if pl.GreedyAttempts > 1 {
		return greedy.ConstructWithRestarts(p, pl.GreedyAttempts, r)
	}
	a := greedy.Construct(p, pl.Strategy, r)

	return verify.Result(a, verify.Verify(p, a), 1, "greedy: "+pl.Strategy.String())
}

// search runs the improvement stage, counting moves into the collector.
func (rn Runner) search(p *problem.Problem, pl Pipeline, start problem.Assignment, r *rand.Rand, log *zap.Logger) (problem.Result, error) {
	opts := pl.Search
	if rn.Metrics != nil {
		var (
			counter = rn.Metrics.MoveCounter(pl.Label())
			next    = opts.OnMove
		)
		opts.OnMove = func(m localsearch.Move) {
			counter.Inc()
			if next != nil {
				next(m)
			}
		}
	}

	if pl.Restarts > 0 {
		return restart.SolveWithRestarts(p, start, restart.Options{
			Restarts:             pl.Restarts,
			IterationsPerRestart: opts.MaxIter,
			Search:               opts,
			Rand:                 r,
			Logger:               log,
		})
	}

	return localsearch.Improve(p, start, pl.Method, opts)
}

// validate checks counts and search options.
func (pl Pipeline) validate() error {
	if pl.GreedyAttempts < 0 || pl.Restarts < 0 {
		return fmt.Errorf("GreedyAttempts=%d Restarts=%d: %w", pl.GreedyAttempts, pl.Restarts, ErrInvalidPipeline)
	}
	if err := pl.Search.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPipeline, err)
	}

	return nil
}

// strategyLabel names the greedy stage.
func strategyLabel(pl Pipeline) string {
	if pl.GreedyAttempts > 1 {
		return fmt.Sprintf("rotation x%d", pl.GreedyAttempts)
	}

	return pl.Strategy.String()
}
