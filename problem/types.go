package problem

import (
	"errors"
	"slices"
)

// Sentinel errors returned by New.
var (
	// ErrNilGraph indicates that no interference graph was supplied.
	ErrNilGraph = errors.New("problem: graph is nil")

	// ErrNoNodes indicates an instance without nodes.
	ErrNoNodes = errors.New("problem: no nodes")

	// ErrNoFrequencies indicates k < 1.
	ErrNoFrequencies = errors.New("problem: frequency count must be at least 1")

	// ErrCostShape indicates the cost matrix is not n×k.
	ErrCostShape = errors.New("problem: cost matrix shape mismatch")

	// ErrBadCost indicates a negative, NaN or infinite cost entry.
	ErrBadCost = errors.New("problem: cost must be finite and non-negative")
)

// Assignment maps node i to frequency Assignment[i] ∈ [0, k).
type Assignment []int

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}

	return slices.Clone(a)
}

// Equal reports whether a and b assign the same frequency to every node.
func (a Assignment) Equal(b Assignment) bool { return slices.Equal(a, b) }

// Result is the outcome of a solver stage. It is always well-formed: solvers
// degrade to returning some assignment rather than none.
type Result struct {
	// Assignment is the final assignment, owned by the caller.
	Assignment Assignment

	// Cost is the verified total cost of Assignment.
	Cost float64

	// Valid reports zero conflicts and zero range errors.
	Valid bool

	// Conflicts is the number of conflicting edges in Assignment.
	Conflicts int

	// Iterations counts applied moves (search) or repair steps.
	Iterations int

	// Note is a human-readable summary, e.g. the stop reason.
	Note string
}
