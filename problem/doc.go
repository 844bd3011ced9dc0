// Package problem defines the immutable frequency-assignment instance and the
// value types every solver exchanges.
//
//   - Problem: {interference graph, frequency count k, n×k cost matrix}.
//     Built once by New, which validates shape and values; read-only afterwards.
//   - Assignment: one frequency per node, owned and mutated by a single stage.
//   - Result: the outcome of a solver stage (assignment, verified cost,
//     feasibility, informational note).
//
// Costs are stored in a gonum *mat.Dense; callers get copies, never the
// backing storage.
package problem
