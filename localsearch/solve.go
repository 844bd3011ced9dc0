package localsearch

import (
	"fmt"

	"github.com/katalvlaran/freqassign/problem"
)

// Improve runs the engine selected by m.
func Improve(p *problem.Problem, a problem.Assignment, m Method, opts Options) (problem.Result, error) {
	switch m {
	case ConflictTolerant:
		return HillClimbWithConflicts(p, a, opts)
	case Feasible:
		return HillClimb(p, a, opts)
	case TabuSearch:
		return Tabu(p, a, opts)
	default:
		return problem.Result{}, fmt.Errorf("Improve: %v: %w", m, ErrUnknownMethod)
	}
}
