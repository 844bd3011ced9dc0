package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/freqassign/internal/config"
)

// Flag names.
const (
	flagEnv            = "env"
	flagLogLevel       = "log-level"
	flagSeed           = "seed"
	flagOutput         = "output"
	flagFormat         = "format"
	flagMetricsAddr    = "metrics-addr"
	flagNodes          = "nodes"
	flagFrequencies    = "frequencies"
	flagDensity        = "density"
	flagKind           = "kind"
	flagStrategy       = "strategy"
	flagGreedyAttempts = "greedy-attempts"
	flagMethod         = "method"
	flagIterations     = "iterations"
	flagRestarts       = "restarts"
	flagTabuTenure     = "tabu-tenure"
)

// flagValues holds the raw flag targets.
type flagValues struct {
	env, logLevel, output, format, metricsAddr string
	seed                                       int64

	nodes, frequencies int
	density            float64
	kind, strategy     string
	greedyAttempts     int
	method             string
	iterations         int
	restarts           int
	tabuTenure         int
}

// apply copies every flag set on the command line into cfg.
func (v flagValues) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	set := func(name string, fn func()) {
		if changed(name) {
			fn()
		}
	}

	set(flagEnv, func() { cfg.Environment = v.env })
	set(flagLogLevel, func() { cfg.LogLevel = v.logLevel })
	set(flagSeed, func() { cfg.Seed = v.seed })
	set(flagOutput, func() { cfg.Output.Path = v.output })
	set(flagFormat, func() { cfg.Output.Format = v.format })
	set(flagMetricsAddr, func() { cfg.Metrics.Addr = v.metricsAddr })
	set(flagNodes, func() { cfg.Instance.Nodes = v.nodes })
	set(flagFrequencies, func() { cfg.Instance.Frequencies = v.frequencies })
	set(flagDensity, func() { cfg.Instance.Density = v.density })
	set(flagKind, func() { cfg.Instance.Kind = v.kind })
	set(flagStrategy, func() { cfg.Solver.Strategy = v.strategy })
	set(flagGreedyAttempts, func() { cfg.Solver.GreedyAttempts = v.greedyAttempts })
	set(flagMethod, func() { cfg.Solver.Method = v.method })
	set(flagIterations, func() { cfg.Solver.Iterations = v.iterations })
	set(flagRestarts, func() { cfg.Solver.Restarts = v.restarts })
	set(flagTabuTenure, func() { cfg.Solver.TabuTenure = v.tabuTenure })
}
