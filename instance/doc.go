// Package instance generates frequency-assignment problems for experiments
// and fixtures.
//
// Generators:
//
//   - Random(n, k, density): Erdős–Rényi interference graph (pair {i, j},
//     i<j, included when a uniform draw is below density; trial order i asc,
//     j asc) with "preferred frequency" costs: one frequency per node drawn
//     uniformly costs U[5, 30), the others U[30, 100).
//   - Special(kind, n, k): Tree (node i ≥ 1 attached to a uniform earlier
//     node), Bipartite (first ⌊n/2⌋ nodes versus the rest, cross pairs kept
//     with probability 0.5) or Complete; costs U[0, 100) row-major.
//   - Path, Cycle, CompleteGraph: deterministic topologies; costs come from
//     the configured cost function (default U[0, 100)).
//
// Determinism: every random draw comes from the configured *rand.Rand
// (WithSeed / WithRand); without one the default seed of internal/rng is
// used. Option constructors panic on nil arguments; generators return
// sentinel errors wrapped with the generator name.
package instance
