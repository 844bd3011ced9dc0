package localsearch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/verify"
)

// tabuList is a FIFO of forbidden moves with fixed capacity.
type tabuList struct {
	moves  []Move
	tenure int
}

// contains reports whether m is currently forbidden.
func (t *tabuList) contains(m Move) bool {
	for _, x := range t.moves {
		if x.Node == m.Node && x.From == m.From && x.To == m.To {
			return true
		}
	}

	return false
}

// push appends m and evicts the oldest entry once over capacity.
func (t *tabuList) push(m Move) {
	t.moves = append(t.moves, m)
	if len(t.moves) > t.tenure {
		t.moves = t.moves[1:]
	}
}

// Tabu runs tabu search on the penalized objective
// cost + opts.TabuPenalty × conflicts and returns the best assignment seen.
//
// Each iteration evaluates every move and applies the lowest-objective one
// among non-tabu moves and tabu moves that beat the global best. The reverse
// of the applied move becomes tabu for the next opts.TabuTenure moves.
//
// Complexity: O(MaxIter · (n·k·T + m)).
func Tabu(p *problem.Problem, a problem.Assignment, opts Options) (problem.Result, error) {
	cur, rep, err := prepare(p, a, opts)
	if err != nil {
		return problem.Result{}, fmt.Errorf("Tabu: %w", err)
	}

	var (
		k       = p.K()
		clashes = make([]int, k)
		list    = tabuList{tenure: opts.TabuTenure}
		cost    = rep.Cost
		conf    = rep.ConflictCount()
		objOf   = func(c float64, n int) float64 { return c + opts.TabuPenalty*float64(n) }
		best    = cur.Clone()
		bestObj = objOf(cost, conf)
		moves   int
		note    = NoteIterationLimit
	)
	for moves < opts.MaxIter {
		var (
			pick             = Move{Node: -1}
			pickObj          = math.Inf(1)
			pickCost         float64
			pickConf         int
			i, f, nConf      int
			nCost, obj       float64
			tabu, aspiration bool
		)
		for i = range cur {
			countClashes(p, cur, i, clashes)
			for f = 0; f < k; f++ {
				if f == cur[i] {
					continue
				}
				nCost = cost - p.Cost(i, cur[i]) + p.Cost(i, f)
				nConf = conf - clashes[cur[i]] + clashes[f]
				obj = objOf(nCost, nConf)

				tabu = list.contains(Move{Node: i, From: cur[i], To: f})
				aspiration = tabu && obj < bestObj
				if tabu && !aspiration {
					continue
				}
				if obj < pickObj {
					pick = Move{Node: i, From: cur[i], To: f, Aspiration: aspiration}
					pickObj, pickCost, pickConf = obj, nCost, nConf
				}
			}
		}
		if pick.Node < 0 {
			note = NoteNoMove
			break
		}

		cur[pick.Node] = pick.To
		cost, conf = pickCost, pickConf
		list.push(pick.reverse())
		moves++
		opts.observe(pick)

		if pickObj < bestObj {
			copy(best, cur)
			bestObj = pickObj
		}
	}

	return verify.Result(best, verify.Verify(p, best), moves, note), nil
}
