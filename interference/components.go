package interference

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Undirected returns a gonum view of g: node IDs equal the node indices and
// every edge {i, j} is present once. The view is a copy; later Connect calls
// on g are not reflected.
//
// Complexity: O(n + m)
func (g *Graph) Undirected() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < g.n; i++ {
		ug.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(int64(e.I)), T: simple.Node(int64(e.J))})
	}

	return ug
}

// Components returns the connected components of g. Each component lists its
// node indices ascending; components are ordered by their smallest node.
//
// Complexity: O(n + m) plus sorting.
func (g *Graph) Components() [][]int {
	raw := topo.ConnectedComponents(g.Undirected())

	out := make([][]int, 0, len(raw))
	for _, comp := range raw {
		ids := make([]int, len(comp))
		for k, node := range comp {
			ids[k] = int(node.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out
}
