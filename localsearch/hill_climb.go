package localsearch

import (
	"fmt"

	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/verify"
)

// prepare validates opts and a, returning a private working copy.
func prepare(p *problem.Problem, a problem.Assignment, opts Options) (problem.Assignment, verify.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, verify.Report{}, err
	}
	rep, err := verify.Check(p, a)
	if err != nil {
		return nil, rep, err
	}

	return a.Clone(), rep, nil
}

// countClashes fills buf[f] with the number of neighbors of i on frequency f.
func countClashes(p *problem.Problem, a problem.Assignment, i int, buf []int) {
	clear(buf)
	p.Graph().EachNeighbor(i, func(j int) { buf[a[j]]++ })
}

// HillClimb runs feasibility-preserving best-improvement hill climbing.
//
// Each iteration applies the move with the largest savings among moves whose
// target frequency no neighbor uses and whose savings exceed opts.Eps.
//
// Complexity: O(MaxIter · (n·k + m)).
func HillClimb(p *problem.Problem, a problem.Assignment, opts Options) (problem.Result, error) {
	cur, _, err := prepare(p, a, opts)
	if err != nil {
		return problem.Result{}, fmt.Errorf("HillClimb: %w", err)
	}

	var (
		k       = p.K()
		clashes = make([]int, k)
		moves   int
		note    = NoteIterationLimit
	)
	for moves < opts.MaxIter {
		var (
			best        = Move{Node: -1}
			bestSavings = opts.Eps
			i, f        int
			savings     float64
		)
		for i = range cur {
			countClashes(p, cur, i, clashes)
			for f = 0; f < k; f++ {
				if f == cur[i] || clashes[f] > 0 {
					continue
				}
				savings = p.Cost(i, cur[i]) - p.Cost(i, f)
				if savings > bestSavings {
					best, bestSavings = Move{Node: i, From: cur[i], To: f}, savings
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
	}

	return verify.Result(cur, verify.Verify(p, cur), moves, note), nil
}
