// Package verify is the single oracle for feasibility and cost of an
// assignment against a problem.Problem.
//
// What:
//
//   - Verify: full scan. Length mismatch ⇒ Cost=+Inf and one LengthMismatch
//     issue. Every in-range value adds costs[i][a[i]] to Cost; every
//     out-of-range value yields a RangeError issue; every adjacent pair
//     sharing an in-range frequency yields a Conflict issue, enumerated
//     i<j in ascending (i, j) order.
//   - VerifyWith(FastFail): stops at the first problem. A range error returns
//     at once with Cost summed over the nodes scanned before it and only that
//     RangeError. With every value in range, Cost is complete and the scan
//     stops at the first Conflict.
//   - Analyze: Report plus per-frequency load/cost, conflict hot spots,
//     cost statistics (gonum stat) and load balance.
//   - Better: validity-then-cost ordering shared by every "keep best" loop.
//
// Valid holds iff there are no range errors and no conflicts.
//
// Every function is pure; inputs are never mutated.
//
// Complexity: Verify is O(n + m); Analyze is O(n log n + m + k).
package verify
