// Package restart runs repair and conflict-tolerant hill climbing from
// several starting points and keeps the best outcome.
//
// Restart 0 starts from the caller's assignment, or from a uniform random
// one when none is given; every later restart draws a fresh uniform random
// assignment from its own stream rng.Derive(base, restart). An infeasible
// start is repaired first; then localsearch.HillClimbWithConflicts runs for
// IterationsPerRestart moves. Outcomes are ranked by verify.Better (valid
// before invalid, then cheaper).
//
// SolveWithRestarts always returns a concrete assignment for valid input: if
// no restart yields a candidate, the repaired initial assignment is returned.
//
// Per-restart progress is logged at debug level on the injected zap logger.
package restart
