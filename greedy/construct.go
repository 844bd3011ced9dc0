package greedy

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/freqassign/internal/rng"
	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/verify"
)

// Construct builds a complete assignment for p using strategy s.
// r is consulted only by Random; nil selects the default deterministic
// stream. Unknown strategies fall back to Degree ordering.
func Construct(p *problem.Problem, s Strategy, r *rand.Rand) problem.Assignment {
	var (
		n         = p.N()
		k         = p.K()
		g         = p.Graph()
		a         = p.NewAssignment()
		processed = make([]bool, n)
		forbidden = make([]bool, k)
		clashes   = make([]int, k)
	)

	for _, i := range order(p, s, r) {
		clear(forbidden)
		clear(clashes)
		g.EachNeighbor(i, func(j int) {
			if processed[j] {
				forbidden[a[j]] = true
				clashes[a[j]]++
			}
		})

		a[i] = pick(p, i, forbidden, clashes)
		processed[i] = true
	}

	return a
}

// pick returns the cheapest non-forbidden frequency of node i, or, when every
// frequency is forbidden, the best by (clashes, cost, index).
func pick(p *problem.Problem, i int, forbidden []bool, clashes []int) int {
	var (
		best     = -1
		bestCost float64
		f        int
		c        float64
	)
	for f = 0; f < len(forbidden); f++ {
		if forbidden[f] {
			continue
		}
		if c = p.Cost(i, f); best < 0 || c < bestCost {
			best, bestCost = f, c
		}
	}
	if best >= 0 {
		return best
	}

	// Fallback: fewer conflicts always dominates cost.
	best, bestCost = 0, p.Cost(i, 0)
	for f = 1; f < len(clashes); f++ {
		c = p.Cost(i, f)
		if clashes[f] < clashes[best] || (clashes[f] == clashes[best] && c < bestCost) {
			best, bestCost = f, c
		}
	}

	return best
}

// order returns the node processing order for strategy s.
func order(p *problem.Problem, s Strategy, r *rand.Rand) []int {
	n := p.N()
	if s == Random {
		return rng.Perm(n, r)
	}

	var (
		g   = p.Graph()
		key = make([]float64, n)
		ids = make([]int, n)
	)
	for i := range ids {
		ids[i] = i
		switch s {
		case MinCost:
			_, key[i] = p.Cheapest(i)
		case Mixed:
			key[i] = -float64(g.Degree(i)) * p.CostSpread(i)
		default:
			key[i] = -float64(g.Degree(i))
		}
	}
	// Stable over the identity permutation keeps ascending-index ties.
	sort.SliceStable(ids, func(x, y int) bool { return key[ids[x]] < key[ids[y]] })

	return ids
}

// ConstructWithRestarts runs attempts constructions (at least one) in the
// rotation Degree, MinCost, Mixed, Random, Random, … and returns the best under
// verify.Better. Random attempts draw successively from r.
func ConstructWithRestarts(p *problem.Problem, attempts int, r *rand.Rand) problem.Result {
	if attempts < 1 {
		attempts = 1
	}
	r = rng.OrDefault(r)

	var (
		bestA    problem.Assignment
		bestRep  verify.Report
		bestStrt Strategy
	)
	for i := 0; i < attempts; i++ {
		s := rotation(i)
		a := Construct(p, s, r)
		rep := verify.Verify(p, a)
		if bestA == nil || verify.Better(rep, bestRep) {
			bestA, bestRep, bestStrt = a, rep, s
		}
	}

	return verify.Result(bestA, bestRep, attempts, fmt.Sprintf("best of %d attempts: %s", attempts, bestStrt))
}
