// Package localsearch improves an assignment by single-node frequency
// reassignment. Every engine scans moves (i, f′) with f′ ≠ a[i] in ascending
// (node, frequency) order and keeps the first of equally good candidates.
//
// Engines:
//
//   - HillClimb (Feasible): best-savings move whose target frequency is unused
//     by every neighbor and whose savings exceed Eps. Cost strictly decreases
//     and no conflict is ever introduced.
//   - HillClimbWithConflicts (ConflictTolerant, the default): net gain is
//     savings − newConflicts × ConflictPenalty; the best positive gain is
//     applied, then each newly conflicting neighbor (ascending) moves to its
//     cheapest frequency avoiding all of its neighbors' frequencies, if one
//     exists. Only this engine passes through conflicting states on purpose.
//   - Tabu: penalized objective cost + TabuPenalty × conflicts over the full
//     neighborhood. Reverse moves stay forbidden for TabuTenure applied moves
//     (FIFO) unless they would beat the global best (aspiration). The chosen
//     move is applied even when it worsens the objective; the global best is
//     returned.
//
// Improve dispatches on a Method. All entry points copy their input, return
// a verified problem.Result with the stop reason in Note, and reject
// structurally broken input with verify.ErrInvalidAssignment.
//
// Complexity: one iteration is O(n·k + m) for every engine, plus O(T) per
// candidate for the tabu membership test.
package localsearch
