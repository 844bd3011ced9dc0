package greedy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
var ErrUnknownStrategy = errors.New("greedy: unknown strategy")

// Strategy selects the node processing order.
type Strategy int

const (
	// Degree processes high-degree nodes first.
	Degree Strategy = iota
	// MinCost processes nodes with the cheapest best frequency first.
	MinCost
	// Mixed processes nodes by degree × cost spread, largest first.
	Mixed
	// Random processes nodes in a seeded random order.
	Random
)

// Strategies lists every strategy in rotation order.
var Strategies = []Strategy{Degree, MinCost, Mixed, Random}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Degree:
		return "degree"
	case MinCost:
		return "minCost"
	case Mixed:
		return "mixed"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name to a Strategy, case-insensitively. The Spanish
// names grado, costo, mixto and aleatorio are accepted as aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "degree", "grado":
		return Degree, nil
	case "mincost", "min_cost", "costo":
		return MinCost, nil
	case "mixed", "mixto":
		return Mixed, nil
	case "random", "aleatorio":
		return Random, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

// rotation returns the strategy used by attempt i of ConstructWithRestarts.
func rotation(i int) Strategy {
	if i < len(Strategies) {
		return Strategies[i]
	}

	return Random
}
