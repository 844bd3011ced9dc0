package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/freqassign/experiment"
	"github.com/katalvlaran/freqassign/internal/config"
)

func newSolveCmd(a *app, defaults *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate one instance and solve it",
		Long: `solve generates an instance from the configured shape and seed, builds a
greedy assignment, improves it with the configured search method (or the
restart driver when --restarts > 0) and prints a summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&a.flags.nodes, flagNodes, "n", defaults.Instance.Nodes, "number of transmitters")
	f.IntVarP(&a.flags.frequencies, flagFrequencies, "k", defaults.Instance.Frequencies, "number of frequencies")
	f.Float64VarP(&a.flags.density, flagDensity, "d", defaults.Instance.Density, "interference edge probability of random instances")
	f.StringVar(&a.flags.kind, flagKind, defaults.Instance.Kind, "instance family: random, tree, bipartite or complete")
	f.StringVar(&a.flags.strategy, flagStrategy, defaults.Solver.Strategy, "greedy strategy: degree, mincost, mixed or random")
	f.IntVar(&a.flags.greedyAttempts, flagGreedyAttempts, defaults.Solver.GreedyAttempts, "greedy attempts; above 1 rotates through every strategy")
	f.StringVarP(&a.flags.method, flagMethod, "m", defaults.Solver.Method, "search method: hill-conflicts, hill or tabu")
	f.IntVarP(&a.flags.iterations, flagIterations, "i", defaults.Solver.Iterations, "search iteration budget")
	f.IntVar(&a.flags.restarts, flagRestarts, defaults.Solver.Restarts, "random restarts of the restart driver; 0 disables it")
	f.IntVar(&a.flags.tabuTenure, flagTabuTenure, defaults.Solver.TabuTenure, "tabu list capacity")

	return cmd
}

func (a *app) solve(cmd *cobra.Command) error {
	c, err := a.cfg.Case()
	if err != nil {
		return err
	}
	p, err := c.Problem()
	if err != nil {
		return err
	}
	a.logger.Info("instance generated",
		zap.Int("nodes", p.N()),
		zap.Int("frequencies", p.K()),
		zap.Int("edges", p.Graph().EdgeCount()),
		zap.String("kind", c.Kind),
		zap.Int64("seed", c.Seed),
	)

	col, stop := a.startMetrics(cmd.Context())
	defer stop()

	out, err := a.runner(col).Run(p, c.Pipeline, c.Rand())
	if err != nil {
		return err
	}
	printOutcome(cmd.OutOrStdout(), out)

	return a.writeReport(out)
}

// printOutcome writes the human-readable summary of one run.
func printOutcome(w io.Writer, o experiment.Outcome) {
	fmt.Fprintf(w, "instance   n=%d k=%d edges=%d density=%.2f max-degree=%d\n",
		o.Nodes, o.Frequencies, o.Edges, o.Density, o.MaxDegree)
	fmt.Fprintf(w, "greedy     %-12s cost=%.2f valid=%t conflicts=%d (%.4fs)\n",
		o.Strategy, o.Initial.Cost, o.Initial.Valid, o.Initial.Conflicts, o.Initial.Seconds)
	fmt.Fprintf(w, "search     %-12s cost=%.2f valid=%t conflicts=%d iterations=%d (%.4fs) %s\n",
		o.Method, o.Final.Cost, o.Final.Valid, o.Final.Conflicts, o.Final.Iterations, o.Final.Seconds, o.Final.Note)
	fmt.Fprintf(w, "improvement %.2f%%\n", o.Improvement)

	an := o.Analysis
	fmt.Fprintf(w, "frequencies used=%d/%d load-balance=%.1f%% on-cheapest=%.1f%% mean-cost=%.2f±%.2f\n",
		an.Used, o.Frequencies, an.LoadBalance, an.OnCheapest, an.MeanCost, an.StdDevCost)
	for _, fs := range an.Frequencies {
		fmt.Fprintf(w, "  f%-3d load=%-4d cost=%.2f\n", fs.Frequency, fs.Load, fs.Cost)
	}
	for _, ns := range an.MostConflicted {
		fmt.Fprintf(w, "  conflicted node %d on f%d: %d conflicts\n", ns.Node, ns.Frequency, ns.Conflicts)
	}
	fmt.Fprintf(w, "assignment %v\n", o.Assignment)
}
