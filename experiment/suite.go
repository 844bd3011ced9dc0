package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/freqassign/greedy"
	"github.com/katalvlaran/freqassign/instance"
	"github.com/katalvlaran/freqassign/internal/rng"
	"github.com/katalvlaran/freqassign/localsearch"
	"github.com/katalvlaran/freqassign/problem"
)

// Experiment group names.
const (
	GroupNodes       = "vary-n"
	GroupFrequencies = "vary-k"
	GroupStrategies  = "strategies"
	GroupMethods     = "methods"
)

// KindRandom selects instance.Random in Case.Kind; any other non-empty
// kind names an instance.Special family.
const KindRandom = "random"

// rng.Derive streams of a case seed.
const (
	instanceStream = 0
	solveStream    = 1
)

// Case is one generated instance plus the pipeline to run on it.
type Case struct {
	Group string
	Label string

	// Kind is KindRandom (or empty) or an instance.ParseKind name. Density
	// applies to random instances only.
	Kind        string
	Nodes       int
	Frequencies int
	Density     float64
	Seed        int64
	Pipeline    Pipeline
}

// Plan returns the four standard experiment groups:
//
//	vary-n      n ∈ {10,20,30,50,100}, k=4, seed 42, min(200, 2n) iterations
//	vary-k      k ∈ {2,3,4,6,8}, n=20, seed 43, 200 iterations
//	strategies  every greedy strategy alone, n=30, k=4, seed 44, 200 iterations
//	methods     every search engine, n=40, k=5, seed 45, 300 iterations
//
// All use density 0.3 and, outside the strategies group, the rotating
// greedy with DefaultGreedyAttempts.
func Plan() []Case {
	const density = 0.3
	pipeline := func(iterations int) Pipeline {
		pl := DefaultPipeline()
		pl.Search.MaxIter = iterations
		return pl
	}

	var cases []Case
	for _, n := range []int{10, 20, 30, 50, 100} {
		cases = append(cases, Case{
			Group: GroupNodes, Label: fmt.Sprintf("n=%d", n),
			Nodes: n, Frequencies: 4, Density: density, Seed: 42,
			Pipeline: pipeline(min(200, 2*n)),
		})
	}
	for _, k := range []int{2, 3, 4, 6, 8} {
		cases = append(cases, Case{
			Group: GroupFrequencies, Label: fmt.Sprintf("k=%d", k),
			Nodes: 20, Frequencies: k, Density: density, Seed: 43,
			Pipeline: pipeline(200),
		})
	}
	for _, s := range greedy.Strategies {
		pl := pipeline(200)
		pl.Strategy, pl.GreedyAttempts = s, 1
		cases = append(cases, Case{
			Group: GroupStrategies, Label: s.String(),
			Nodes: 30, Frequencies: 4, Density: density, Seed: 44,
			Pipeline: pl,
		})
	}
	for _, m := range localsearch.Methods {
		pl := pipeline(300)
		pl.Method = m
		cases = append(cases, Case{
			Group: GroupMethods, Label: m.String(),
			Nodes: 40, Frequencies: 5, Density: density, Seed: 45,
			Pipeline: pl,
		})
	}

	return cases
}

// Problem generates the case's instance.
func (c Case) Problem() (*problem.Problem, error) {
	opt := instance.WithRand(rng.Derive(rng.FromSeed(c.Seed), instanceStream))
	if c.Kind == "" || strings.EqualFold(c.Kind, KindRandom) {
		return instance.Random(c.Nodes, c.Frequencies, c.Density, opt)
	}
	kind, err := instance.ParseKind(c.Kind)
	if err != nil {
		return nil, fmt.Errorf("Problem: %w", err)
	}

	return instance.Special(kind, c.Nodes, c.Frequencies, opt)
}

// Rand returns the pipeline stream of the case seed, independent of the
// stream that generates the instance.
func (c Case) Rand() *rand.Rand {
	return rng.Derive(rng.FromSeed(c.Seed), solveStream)
}

// Suite runs cases in order. It stops at the first failing case or when ctx
// is done, returning the Outcomes gathered so far together with the error.
func (rn Runner) Suite(ctx context.Context, cases []Case) (Report, error) {
	var (
		started = time.Now()
		rep     = Report{ID: uuid.NewString(), StartedAt: started.UTC()}
		log     = rn.logger().With(zap.String("suite_id", rep.ID))
	)
	log.Info("suite started", zap.Int("cases", len(cases)))

	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			rep.Seconds = time.Since(started).Seconds()
			return rep, fmt.Errorf("Suite: case %d: %w", i, err)
		}

		p, err := c.Problem()
		if err != nil {
			rep.Seconds = time.Since(started).Seconds()
			return rep, fmt.Errorf("Suite: %s %s: %w", c.Group, c.Label, err)
		}

		sub := rn
		sub.Logger = log.With(zap.String("group", c.Group), zap.String("case", c.Label))
		out, err := sub.Run(p, c.Pipeline, c.Rand())
		if err != nil {
			rep.Seconds = time.Since(started).Seconds()
			return rep, fmt.Errorf("Suite: %s %s: %w", c.Group, c.Label, err)
		}
		out.Group, out.Label = c.Group, c.Label
		rep.Outcomes = append(rep.Outcomes, out)
	}

	rep.Seconds = time.Since(started).Seconds()
	log.Info("suite finished", zap.Int("runs", len(rep.Outcomes)), zap.Float64("seconds", rep.Seconds))

	return rep, nil
}

// Compare runs every pipeline on the same problem, each from a fresh stream
// derived from seed, in order.
func (rn Runner) Compare(p *problem.Problem, seed int64, pipelines ...Pipeline) ([]Outcome, error) {
	base := rng.FromSeed(seed)
	outs := make([]Outcome, 0, len(pipelines))
	for i, pl := range pipelines {
		out, err := rn.Run(p, pl, rng.Derive(base, uint64(i)))
		if err != nil {
			return outs, fmt.Errorf("Compare: pipeline %d: %w", i, err)
		}
		out.Label = pl.Label()
		outs = append(outs, out)
	}

	return outs, nil
}
