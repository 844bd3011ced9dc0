package instance

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Sentinel errors.
var (
	// ErrTooFewNodes indicates a node count below the generator's minimum.
	ErrTooFewNodes = errors.New("instance: too few nodes")

	// ErrInvalidDensity indicates a density outside [0, 1].
	ErrInvalidDensity = errors.New("instance: density out of range")

	// ErrUnknownKind indicates an unrecognized special-instance kind.
	ErrUnknownKind = errors.New("instance: unknown kind")
)

// Generator names used as error prefixes.
const (
	MethodRandom   = "Random"
	MethodSpecial  = "Special"
	MethodPath     = "Path"
	MethodCycle    = "Cycle"
	MethodComplete = "CompleteGraph"
)

// Minimum node counts.
const (
	MinNodes      = 1
	MinCycleNodes = 3
)

// Cost ranges of the generators.
const (
	PreferredCostMin = 5.0
	PreferredCostMax = 30.0
	OtherCostMin     = 30.0
	OtherCostMax     = 100.0
	UniformCostMax   = 100.0

	// BipartiteEdgeProb is the cross-pair probability of Special(Bipartite).
	BipartiteEdgeProb = 0.5
)

// Kind selects a special instance family.
type Kind int

const (
	// Tree is a random recursive tree (always 2-colorable).
	Tree Kind = iota
	// Bipartite is a random bipartite graph (always 2-colorable).
	Bipartite
	// Complete is K_n (needs n frequencies to be feasible).
	Complete
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Tree:
		return "tree"
	case Bipartite:
		return "bipartite"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a name to a Kind, case-insensitively. The Spanish names
// arbol, bipartito and completo are accepted as aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tree", "arbol", "árbol":
		return Tree, nil
	case "bipartite", "bipartito":
		return Bipartite, nil
	case "complete", "completo":
		return Complete, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
	}
}

// CostFn returns the cost of frequency f at node i. It may draw from r.
type CostFn func(i, f int, r *rand.Rand) float64

// config aggregates generator knobs; options apply in order.
type config struct {
	rng    *rand.Rand
	costFn CostFn
}
