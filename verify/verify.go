package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/freqassign/problem"
)

// Verify runs a full scan of a against p. See the package documentation for
// the exact contract.
func Verify(p *problem.Problem, a problem.Assignment) Report {
	return VerifyWith(p, a, Options{})
}

// VerifyWith is Verify with options.
//
// Complexity: O(n + m).
func VerifyWith(p *problem.Problem, a problem.Assignment, opts Options) Report {
	n, k := p.N(), p.K()
	if len(a) != n {
		return Report{Cost: math.Inf(1), Issues: []Issue{{Kind: LengthMismatch}}}
	}

	var (
		rep    Report
		ranged bool
		i, f   int
	)

	// Pass 1: cost and range errors in node order.
	for i, f = range a {
		if f < 0 || f >= k {
			rep.Issues = append(rep.Issues, Issue{Kind: RangeError, Node: i})
			if opts.FastFail {
				return rep
			}
			ranged = true
			continue
		}
		rep.Cost += p.Cost(i, f)
	}

	// Pass 2: conflicts among in-range values, i<j ascending.
	g := p.Graph()
	for i = 0; i < n; i++ {
		if a[i] < 0 || a[i] >= k {
			continue
		}
		for _, j := range g.Neighbors(i) {
			if j <= i || a[j] != a[i] {
				continue
			}
			rep.Issues = append(rep.Issues, Issue{Kind: Conflict, I: i, J: j})
			if opts.FastFail {
				return rep
			}
		}
	}

	rep.Valid = !ranged && len(rep.Issues) == 0

	return rep
}

// Check verifies a and fails with ErrInvalidAssignment, wrapping the first
// structural issue, when a cannot be used as a search input. Conflicts are
// not an error.
func Check(p *problem.Problem, a problem.Assignment) (Report, error) {
	rep := Verify(p, a)
	if is, bad := rep.FirstStructural(); bad {
		return rep, fmt.Errorf("%s: %w", is, ErrInvalidAssignment)
	}

	return rep, nil
}

// ConflictCount returns the number of conflicting edges among in-range values
// without building a Report. Entries beyond len(a) are ignored.
//
// Complexity: O(n + m).
func ConflictCount(p *problem.Problem, a problem.Assignment) int {
	var (
		g     = p.Graph()
		k     = p.K()
		count int
	)
	for i := 0; i < len(a) && i < p.N(); i++ {
		if a[i] < 0 || a[i] >= k {
			continue
		}
		g.EachNeighbor(i, func(j int) {
			if j > i && j < len(a) && a[j] == a[i] {
				count++
			}
		})
	}

	return count
}

// Better reports whether x ranks strictly above y: a valid report beats an
// invalid one; otherwise the lower cost wins.
func Better(x, y Report) bool {
	if x.Valid != y.Valid {
		return x.Valid
	}

	return x.Cost < y.Cost
}

// Result converts a verdict into a problem.Result for a, cloning a.
func Result(a problem.Assignment, rep Report, iterations int, note string) problem.Result {
	return problem.Result{
		Assignment: a.Clone(),
		Cost:       rep.Cost,
		Valid:      rep.Valid,
		Conflicts:  rep.ConflictCount(),
		Iterations: iterations,
		Note:       note,
	}
}
