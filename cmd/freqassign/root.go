package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/freqassign/experiment"
	"github.com/katalvlaran/freqassign/internal/config"
	"github.com/katalvlaran/freqassign/internal/logging"
	"github.com/katalvlaran/freqassign/internal/metrics"
)

// app carries the configuration and services shared by the subcommands.
type app struct {
	configPath string
	flags      flagValues
	cfg        *config.Config
	logger     *zap.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "freqassign",
		Short: "Cost-weighted frequency assignment solver",
		Long: `freqassign assigns one of k frequencies to every transmitter so that no
two interfering transmitters share a frequency, minimizing the summed
per-transmitter frequency cost.

Configuration comes from FREQ_* environment variables, then the optional
--config YAML file, then command-line flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.env, flagEnv, defaults.Environment, "environment: development or production")
	pf.StringVar(&a.flags.logLevel, flagLogLevel, defaults.LogLevel, "log level: debug, info, warn or error")
	pf.Int64Var(&a.flags.seed, flagSeed, defaults.Seed, "random seed (0 selects the built-in default)")
	pf.StringVarP(&a.flags.output, flagOutput, "o", defaults.Output.Path, "report file to write")
	pf.StringVar(&a.flags.format, flagFormat, defaults.Output.Format, "report format: json or yaml")
	pf.StringVar(&a.flags.metricsAddr, flagMetricsAddr, defaults.Metrics.Addr, "serve Prometheus metrics on this address while running")

	root.AddCommand(newSolveCmd(a, defaults), newSuiteCmd(a))

	return root
}

// setup loads the configuration, applies flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.flags.apply(cmd, cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}

	return nil
}

// startMetrics serves a collector when an address is configured. The
// returned stop function shuts the server down.
func (a *app) startMetrics(ctx context.Context) (*metrics.Collector, func()) {
	if a.cfg.Metrics.Addr == "" {
		return nil, func() {}
	}

	col := metrics.New()
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := col.Serve(ctx, a.cfg.Metrics.Addr, a.logger); err != nil {
			a.logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	return col, func() {
		cancel()
		<-done
	}
}

// runner returns an experiment.Runner wired to the app's logger.
func (a *app) runner(col *metrics.Collector) experiment.Runner {
	return experiment.Runner{Logger: a.logger, Metrics: col}
}

// writeReport writes v to the configured output path, if any.
func (a *app) writeReport(v any) error {
	if a.cfg.Output.Path == "" {
		return nil
	}
	format, err := experiment.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	f, err := os.Create(a.cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = experiment.WriteReport(f, v, format); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	a.logger.Info("report written", zap.String("path", a.cfg.Output.Path), zap.String("format", string(format)))

	return nil
}
