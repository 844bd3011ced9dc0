// Package greedy builds initial assignments with one-pass, order-driven
// construction.
//
// Each Strategy fixes the order in which nodes are processed:
//
//	Degree  – descending degree, ties by ascending index.
//	MinCost – ascending cheapest own cost, ties by ascending index.
//	Mixed   – descending degree × (maxCost − minCost), ties by ascending index.
//	Random  – Fisher–Yates shuffle driven by the caller's *rand.Rand.
//
// For each node in order the frequencies held by already-processed neighbors
// are forbidden and the cheapest remaining frequency is chosen (ties: lowest
// index). When every frequency is forbidden the node takes the frequency with
// the fewest conflicts against processed neighbors, then lowest cost, then
// lowest index. Construction therefore always yields a complete assignment
// with values in [0, k), feasible or not.
//
// ConstructWithRestarts runs the strategies in the rotation
// Degree, MinCost, Mixed, Random, Random, … and keeps the best result under
// verify.Better.
//
// Complexity: Construct is O(n log n + n·k + m) time, O(n + k) extra space.
package greedy
