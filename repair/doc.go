// Package repair reduces the conflicts of an assignment without re-optimizing
// it from scratch.
//
// Each step picks the conflict whose endpoints currently cost the most
// (ties: first in ascending (i, j) order) and tries to move one endpoint to
// its cheapest frequency unused by its other neighbors. The endpoint with the
// smaller cost delta moves (ties: the lower index). When neither endpoint has
// such a frequency, the higher endpoint is forced to the frequency ≠ current
// with the fewest neighbor clashes (ties: lowest index).
//
// A forced move can raise the conflict count, so Repair returns the best
// assignment seen during the run (fewest conflicts, then lowest cost). The
// returned conflict count is therefore never above the input's, and a
// conflict-free input comes back unchanged after zero steps.
//
// Complexity: O(maxAttempts · (n + m + Δ·k)).
package repair
