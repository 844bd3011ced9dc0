package restart

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/freqassign/internal/rng"
	"github.com/katalvlaran/freqassign/localsearch"
	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/repair"
	"github.com/katalvlaran/freqassign/verify"
)

// SolveWithRestarts runs opts.Restarts restarts and returns the best result.
// initial may be nil. Errors are reserved for invalid options, an invalid
// hill-climbing configuration or a structurally broken initial assignment.
//
// Complexity: O(Restarts · (RepairAttempts + IterationsPerRestart) · (n·k + m)).
func SolveWithRestarts(p *problem.Problem, initial problem.Assignment, opts Options) (problem.Result, error) {
	o, err := opts.normalize(p.N())
	if err != nil {
		return problem.Result{}, fmt.Errorf("SolveWithRestarts: %w", err)
	}
	if err = o.Search.Validate(); err != nil {
		return problem.Result{}, fmt.Errorf("SolveWithRestarts: %w", err)
	}
	if initial != nil {
		if _, err = verify.Check(p, initial); err != nil {
			return problem.Result{}, fmt.Errorf("SolveWithRestarts: %w", err)
		}
	}

	var (
		base    = rng.OrDefault(o.Rand)
		log     = o.Logger.With(zap.Int("nodes", p.N()), zap.Int("frequencies", p.K()))
		best    problem.Assignment
		bestRep verify.Report
		bestIdx = -1
		moves   int
		floor   problem.Assignment
	)
	for r := 0; r < o.Restarts; r++ {
		start := initial
		if r > 0 || start == nil {
			start = uniform(p, rng.Derive(base, uint64(r)))
		}
		if r == 0 {
			floor = start
		}

		res, err := o.run(p, start)
		if err != nil {
			log.Warn("restart failed", zap.Int("restart", r), zap.Error(err))
			continue
		}
		moves += res.Iterations

		rep := verify.Verify(p, res.Assignment)
		log.Debug("restart finished",
			zap.Int("restart", r),
			zap.Float64("cost", rep.Cost),
			zap.Bool("valid", rep.Valid),
			zap.Int("conflicts", rep.ConflictCount()),
			zap.Int("moves", res.Iterations),
		)
		if best == nil || verify.Better(rep, bestRep) {
			best, bestRep, bestIdx = res.Assignment, rep, r
		}
	}

	if best == nil {
		fb, err := repair.Repair(p, floor, o.RepairAttempts)
		if err != nil {
			return problem.Result{}, fmt.Errorf("SolveWithRestarts: fallback: %w", err)
		}
		fb.Note = "repaired initial assignment"
		log.Warn("no restart produced a candidate; using repaired initial assignment")

		return fb, nil
	}

	return verify.Result(best, bestRep, moves, fmt.Sprintf("best of %d restarts (restart %d)", o.Restarts, bestIdx)), nil
}

// run performs one restart: repair when infeasible, then hill climbing.
func (o Options) run(p *problem.Problem, start problem.Assignment) (problem.Result, error) {
	if !verify.Verify(p, start).Valid {
		rep, err := repair.Repair(p, start, o.RepairAttempts)
		if err != nil {
			return problem.Result{}, err
		}
		start = rep.Assignment
	}

	return localsearch.HillClimbWithConflicts(p, start, o.Search)
}

// uniform draws every node's frequency uniformly from [0, k).
func uniform(p *problem.Problem, r *rand.Rand) problem.Assignment {
	a := p.NewAssignment()
	for i := range a {
		a[i] = r.Intn(p.K())
	}

	return a
}
