// Package interference implements the undirected interference graph over
// integer node indices: an edge {i, j} means nodes i and j must not share a
// frequency.
//
// What:
//
//   - Graph: n nodes indexed 0..n-1, duplicate-free neighbor sets kept in
//     ascending order so every enumeration is deterministic.
//   - Connect: symmetric, idempotent edge insertion; self-loops are a no-op.
//   - Metrics: Degree, MaxDegree, EdgeCount, Density.
//   - Components: connected components via gonum's topo package.
//
// Invariants:
//
//   - j ∈ Neighbors(i) ⇔ i ∈ Neighbors(j)
//   - i ∉ Neighbors(i)
//   - every index lies in [0, n)
//
// Errors:
//
//   - ErrNegativeSize    node count below zero
//   - ErrNodeOutOfRange  Connect called with an index outside [0, n)
//
// Complexity:
//
//   - Connect:   O(deg) (sorted insertion)
//   - Neighbors: O(deg) (defensive copy)
//   - HasEdge:   O(log deg)
//   - EdgeCount, MaxDegree: O(n)
//
// A Graph is not safe for concurrent mutation; build it once, then share it
// read-only.
package interference
