package interference

import (
	"fmt"
	"slices"
	"sort"
)

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// valid reports whether i is a node index of g.
func (g *Graph) valid(i int) bool { return i >= 0 && i < g.n }

// Connect adds the undirected edge {i, j}.
// Out-of-range indices are rejected with ErrNodeOutOfRange; i == j is a no-op;
// connecting an existing pair again changes nothing.
//
// Complexity: O(deg(i) + deg(j))
func (g *Graph) Connect(i, j int) error {
	if !g.valid(i) || !g.valid(j) {
		return fmt.Errorf("Connect(%d, %d) with n=%d: %w", i, j, g.n, ErrNodeOutOfRange)
	}
	if i == j {
		return nil
	}

	g.adj[i] = insertSorted(g.adj[i], j)
	g.adj[j] = insertSorted(g.adj[j], i)

	return nil
}

// insertSorted inserts v into the ascending slice s unless already present.
func insertSorted(s []int, v int) []int {
	pos, found := slices.BinarySearch(s, v)
	if found {
		return s
	}

	return slices.Insert(s, pos, v)
}

// HasEdge reports whether i and j interfere. Out-of-range indices report false.
//
// Complexity: O(log deg(i))
func (g *Graph) HasEdge(i, j int) bool {
	if !g.valid(i) || !g.valid(j) {
		return false
	}
	_, found := slices.BinarySearch(g.adj[i], j)

	return found
}

// Neighbors returns the neighbors of i in ascending order.
// The slice is a copy; an isolated node yields an empty slice and an
// out-of-range index yields nil.
func (g *Graph) Neighbors(i int) []int {
	if !g.valid(i) {
		return nil
	}
	out := make([]int, len(g.adj[i]))
	copy(out, g.adj[i])

	return out
}

// EachNeighbor calls fn for every neighbor of i in ascending order without
// allocating. It is the hot-path accessor used by the search routines.
func (g *Graph) EachNeighbor(i int, fn func(j int)) {
	if !g.valid(i) {
		return
	}
	for _, j := range g.adj[i] {
		fn(j)
	}
}

// Degree returns |Neighbors(i)|, 0 for an out-of-range index.
func (g *Graph) Degree(i int) int {
	if !g.valid(i) {
		return 0
	}

	return len(g.adj[i])
}

// MaxDegree returns the largest node degree, 0 for an empty graph.
//
// Complexity: O(n)
func (g *Graph) MaxDegree() int {
	best := 0
	for i := 0; i < g.n; i++ {
		if d := len(g.adj[i]); d > best {
			best = d
		}
	}

	return best
}

// EdgeCount returns the number of undirected edges (sum of degrees / 2).
//
// Complexity: O(n)
func (g *Graph) EdgeCount() int {
	total := 0
	for i := 0; i < g.n; i++ {
		total += len(g.adj[i])
	}

	return total / 2
}

// Density returns EdgeCount / (n·(n−1)/2), defined as 0 for n ≤ 1.
func (g *Graph) Density() float64 {
	if g.n <= 1 {
		return 0
	}
	maxEdges := float64(g.n) * float64(g.n-1) / 2

	return float64(g.EdgeCount()) / maxEdges
}

// Edges lists every edge once as (i, j) with i < j, ordered by i then j.
//
// Complexity: O(n + m)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for i := 0; i < g.n; i++ {
		for _, j := range g.adj[i] {
			if i < j {
				out = append(out, Edge{I: i, J: j})
			}
		}
	}

	return out
}

// DegreeOrder returns all node indices sorted by descending degree,
// ties broken by ascending index.
func (g *Graph) DegreeOrder() []int {
	order := make([]int, g.n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(g.adj[order[a]]) > len(g.adj[order[b]])
	})

	return order
}

// Clone returns an independent deep copy of g.
func (g *Graph) Clone() *Graph {
	cp := &Graph{n: g.n, adj: make([][]int, g.n)}
	for i := 0; i < g.n; i++ {
		cp.adj[i] = slices.Clone(g.adj[i])
	}

	return cp
}
