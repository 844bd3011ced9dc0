// Package freqassign solves cost-weighted frequency assignment: give each of
// n transmitters one of k frequencies so that no two interfering
// transmitters share a frequency, minimizing the summed per-transmitter
// frequency cost.
//
// The module is organized leaf-first:
//
//	interference/  undirected interference graph with sorted neighbor sets
//	problem/       validated instance: graph, k and an n×k cost matrix
//	verify/        single source of truth for cost, conflicts and range errors
//	greedy/        ordered greedy construction with conflict fallback
//	repair/        endpoint reassignment of conflicting edges
//	localsearch/   feasible and conflict-tolerant hill climbing, tabu search
//	restart/       random-restart driver with a repaired floor
//	instance/      random, structured and fixture instance generators
//	experiment/    pipelines, the experiment plan and JSON/YAML reports
//
// Infeasibility is never an error: every solver returns a full assignment
// together with its verified cost and conflict count.
//
// Quick example, a path of four transmitters and two frequencies:
//
//	0───1───2───3
//
// has the two feasible assignments [0 1 0 1] and [1 0 1 0]; with costs
// {1, 3} per node both cost 8.
//
// The freqassign command (cmd/freqassign) runs single solves and the
// experiment suite:
//
//	go run ./cmd/freqassign solve -n 30 -k 4 --method tabu
//	go run ./cmd/freqassign suite -o report.yaml --format yaml
package freqassign
