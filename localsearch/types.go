package localsearch

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors.
var (
	// ErrInvalidOptions indicates an Options field outside its domain.
	ErrInvalidOptions = errors.New("localsearch: invalid options")

	// ErrUnknownMethod indicates an unrecognized Method value or name.
	ErrUnknownMethod = errors.New("localsearch: unknown method")
)

// Defaults used by DefaultOptions.
const (
	DefaultMaxIter         = 1000
	DefaultConflictPenalty = 50.0
	DefaultTabuTenure      = 10
	DefaultTabuPenalty     = 1000.0
	DefaultEps             = 1e-9
)

// Stop reasons reported in problem.Result.Note.
const (
	NoteLocalOptimum   = "local optimum"
	NoteIterationLimit = "iteration limit"
	NoteNoMove         = "no admissible move"
)

// Method selects a search engine.
type Method int

const (
	// ConflictTolerant is HillClimbWithConflicts.
	ConflictTolerant Method = iota
	// Feasible is HillClimb.
	Feasible
	// TabuSearch is Tabu.
	TabuSearch
)

// Methods lists every engine.
var Methods = []Method{ConflictTolerant, Feasible, TabuSearch}

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case ConflictTolerant:
		return "hill-conflicts"
	case Feasible:
		return "hill"
	case TabuSearch:
		return "tabu"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a name to a Method, case-insensitively. Underscores and
// hyphens are interchangeable; the Spanish name hill_climbing_con_conflictos
// is accepted.
func ParseMethod(name string) (Method, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	switch key {
	case "hill-conflicts", "conflicts", "tolerant", "hill-climbing-with-conflicts", "hill-climbing-con-conflictos":
		return ConflictTolerant, nil
	case "hill", "feasible", "hill-climbing":
		return Feasible, nil
	case "tabu", "tabu-search":
		return TabuSearch, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", name, ErrUnknownMethod)
	}
}

// Move is one applied reassignment.
type Move struct {
	Node int
	From int
	To   int

	// Aspiration marks a tabu move admitted because it set a new global best.
	Aspiration bool
}

// reverse returns the move that undoes m.
func (m Move) reverse() Move { return Move{Node: m.Node, From: m.To, To: m.From} }

// Options configures every engine; fields an engine does not use are ignored.
type Options struct {
	// MaxIter caps applied moves. 0 returns the start unchanged.
	MaxIter int

	// ConflictPenalty is the per-conflict charge of HillClimbWithConflicts.
	ConflictPenalty float64

	// TabuTenure is the capacity of the tabu list.
	TabuTenure int

	// TabuPenalty is the per-conflict charge of the tabu objective.
	TabuPenalty float64

	// Eps is the minimum savings (or net gain) a hill-climbing move needs.
	Eps float64

	// OnMove, when set, observes every applied move in order.
	OnMove func(Move)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxIter:         DefaultMaxIter,
		ConflictPenalty: DefaultConflictPenalty,
		TabuTenure:      DefaultTabuTenure,
		TabuPenalty:     DefaultTabuPenalty,
		Eps:             DefaultEps,
	}
}

// Validate checks every field against its domain.
func (o Options) Validate() error {
	bad := func(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
	switch {
	case o.MaxIter < 0:
		return fmt.Errorf("MaxIter=%d: %w", o.MaxIter, ErrInvalidOptions)
	case bad(o.ConflictPenalty) || o.ConflictPenalty <= 0:
		return fmt.Errorf("ConflictPenalty=%v: %w", o.ConflictPenalty, ErrInvalidOptions)
	case o.TabuTenure < 1:
		return fmt.Errorf("TabuTenure=%d: %w", o.TabuTenure, ErrInvalidOptions)
	case bad(o.TabuPenalty) || o.TabuPenalty <= 0:
		return fmt.Errorf("TabuPenalty=%v: %w", o.TabuPenalty, ErrInvalidOptions)
	case bad(o.Eps) || o.Eps < 0:
		return fmt.Errorf("Eps=%v: %w", o.Eps, ErrInvalidOptions)
	}

	return nil
}

// observe forwards m to OnMove when set.
func (o Options) observe(m Move) {
	if o.OnMove != nil {
		o.OnMove(m)
	}
}
