package localsearch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/repair"
	"github.com/katalvlaran/freqassign/verify"
)

// HillClimbWithConflicts runs conflict-tolerant hill climbing with inline
// repair.
//
// A move's net gain is its savings minus opts.ConflictPenalty for every
// neighbor already on the target frequency. The best gain above opts.Eps is
// applied; neighbors it now conflicts with are then moved, in ascending
// order, to their cheapest frequency unused by any of their neighbors.
// Repair moves are reported to OnMove as well but do not count as
// iterations.
//
// Complexity: O(MaxIter · (n·k + m + Δ²)).
func HillClimbWithConflicts(p *problem.Problem, a problem.Assignment, opts Options) (problem.Result, error) {
	cur, _, err := prepare(p, a, opts)
	if err != nil {
		return problem.Result{}, fmt.Errorf("HillClimbWithConflicts: %w", err)
	}

	var (
		k       = p.K()
		clashes = make([]int, k)
		moves   int
		note    = NoteIterationLimit
	)
	for moves < opts.MaxIter {
		var (
			best    = Move{Node: -1}
			bestNet = math.Inf(-1)
			i, f    int
			net     float64
		)
		for i = range cur {
			countClashes(p, cur, i, clashes)
			for f = 0; f < k; f++ {
				if f == cur[i] {
					continue
				}
				net = p.Cost(i, cur[i]) - p.Cost(i, f) - float64(clashes[f])*opts.ConflictPenalty
				if net > opts.Eps && net > bestNet {
					best, bestNet = Move{Node: i, From: cur[i], To: f}, net
				}
			}
		}
		if best.Node < 0 {
			note = NoteLocalOptimum
			break
		}

		cur[best.Node] = best.To
		moves++
		opts.observe(best)

		// Inline repair of the neighbors now sharing best.To.
		for _, j := range p.Graph().Neighbors(best.Node) {
			if cur[j] != best.To {
				continue
			}
			if f, ok := repair.Alternative(p, cur, j, -1); ok {
				opts.observe(Move{Node: j, From: cur[j], To: f})
				cur[j] = f
			}
		}
	}

	return verify.Result(cur, verify.Verify(p, cur), moves, note), nil
}
