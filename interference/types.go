package interference

import "errors"

// Sentinel errors for interference graph operations.
var (
	// ErrNegativeSize indicates New was called with n < 0.
	ErrNegativeSize = errors.New("interference: negative node count")

	// ErrNodeOutOfRange indicates a node index outside [0, n).
	ErrNodeOutOfRange = errors.New("interference: node index out of range")
)

// Edge is an unordered node pair, normalized so that I < J.
type Edge struct {
	I int
	J int
}

// Graph is an undirected, simple adjacency structure over nodes 0..n-1.
//
// adj[i] holds the neighbors of i in ascending order without duplicates.
type Graph struct {
	n   int
	adj [][]int
}

// New creates an edgeless Graph with n nodes.
//
// Complexity: O(n)
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &Graph{n: n, adj: make([][]int, n)}, nil
}

// MustNew is like New but panics on a negative n. Intended for fixtures and
// package-level test data.
func MustNew(n int) *Graph {
	g, err := New(n)
	if err != nil {
		panic(err)
	}

	return g
}
