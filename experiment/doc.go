// Package experiment chains the solver stages into a pipeline and runs the
// systematic experiment plans.
//
// A pipeline is: greedy construction (one strategy, or the best of several
// rotating attempts), then either one local-search engine or the restart
// driver, then a full verification and analysis of the final assignment.
// Each run yields an Outcome carrying both stage summaries, the relative
// improvement and timings; a Suite gathers Outcomes into a Report that
// WriteReport serializes as JSON or YAML and WriteSummary prints as a table.
//
// Runs are sequential. Suite checks its context between runs; a single
// run is bounded by its iteration caps. Every run gets a uuid, is logged at
// info level through the Runner's zap logger and, when the Runner carries a
// metrics.Collector, is recorded there together with every applied move.
package experiment
