package repair

import (
	"fmt"

	"github.com/katalvlaran/freqassign/interference"
	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/verify"
)

// Stop reasons reported in Result.Note.
const (
	NoteConflictFree = "conflict-free"
	NoteAttemptLimit = "attempt limit"
	NoteStuck        = "no alternative frequency"
)

// Repair runs up to maxAttempts repair steps on a copy of a. The input is
// never mutated. A structurally broken a (wrong length, out-of-range value)
// yields verify.ErrInvalidAssignment.
func Repair(p *problem.Problem, a problem.Assignment, maxAttempts int) (problem.Result, error) {
	rep, err := verify.Check(p, a)
	if err != nil {
		return problem.Result{}, fmt.Errorf("Repair: %w", err)
	}

	var (
		cur      = a.Clone()
		best     = a.Clone()
		bestRep  = rep
		bestConf = rep.ConflictCount()
		steps    int
		note     = NoteAttemptLimit
	)
	for steps < maxAttempts {
		conflicts := rep.Conflicts()
		if len(conflicts) == 0 {
			note = NoteConflictFree
			break
		}
		if !step(p, cur, worst(p, cur, conflicts)) {
			note = NoteStuck
			break
		}
		steps++

		rep = verify.Verify(p, cur)
		if c := rep.ConflictCount(); c < bestConf || (c == bestConf && rep.Cost < bestRep.Cost) {
			copy(best, cur)
			bestRep, bestConf = rep, c
		}
	}
	if bestConf == 0 {
		note = NoteConflictFree
	}

	return verify.Result(best, bestRep, steps, note), nil
}

// worst returns the conflict with the highest combined endpoint cost; the
// first one wins ties.
func worst(p *problem.Problem, a problem.Assignment, conflicts []interference.Edge) interference.Edge {
	var (
		pick     = conflicts[0]
		pickCost = p.Cost(pick.I, a[pick.I]) + p.Cost(pick.J, a[pick.J])
	)
	for _, e := range conflicts[1:] {
		if c := p.Cost(e.I, a[e.I]) + p.Cost(e.J, a[e.J]); c > pickCost {
			pick, pickCost = e, c
		}
	}

	return pick
}

// step resolves conflict e in place. It reports false only when no endpoint
// can change frequency at all (k == 1).
func step(p *problem.Problem, a problem.Assignment, e interference.Edge) bool {
	fi, okI := Alternative(p, a, e.I, e.J)
	fj, okJ := Alternative(p, a, e.J, e.I)

	switch {
	case okI && okJ:
		di := p.Cost(e.I, fi) - p.Cost(e.I, a[e.I])
		dj := p.Cost(e.J, fj) - p.Cost(e.J, a[e.J])
		if di <= dj {
			a[e.I] = fi
		} else {
			a[e.J] = fj
		}
	case okI:
		a[e.I] = fi
	case okJ:
		a[e.J] = fj
	default:
		f, ok := leastClashing(p, a, e.J)
		if !ok {
			return false
		}
		a[e.J] = f
	}

	return true
}

// Alternative returns node i's cheapest frequency other than a[i] that no
// neighbor except partner currently uses (ties: lowest index). Pass
// partner < 0 to consider every neighbor.
func Alternative(p *problem.Problem, a problem.Assignment, i, partner int) (int, bool) {
	used := make([]bool, p.K())
	p.Graph().EachNeighbor(i, func(j int) {
		if j != partner {
			used[a[j]] = true
		}
	})

	var (
		best     = -1
		bestCost float64
	)
	for f := range used {
		if f == a[i] || used[f] {
			continue
		}
		if c := p.Cost(i, f); best < 0 || c < bestCost {
			best, bestCost = f, c
		}
	}

	return best, best >= 0
}

// leastClashing returns the frequency ≠ a[i] shared by the fewest neighbors
// of i (ties: lowest index).
func leastClashing(p *problem.Problem, a problem.Assignment, i int) (int, bool) {
	clashes := make([]int, p.K())
	p.Graph().EachNeighbor(i, func(j int) { clashes[a[j]]++ })

	best := -1
	for f := range clashes {
		if f == a[i] {
			continue
		}
		if best < 0 || clashes[f] < clashes[best] {
			best = f
		}
	}

	return best, best >= 0
}
