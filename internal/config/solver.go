package config

import (
	"fmt"

	"github.com/katalvlaran/freqassign/experiment"
	"github.com/katalvlaran/freqassign/greedy"
	"github.com/katalvlaran/freqassign/localsearch"
)

// SearchOptions maps the solver knobs onto localsearch.Options.
func (s SolverConfig) SearchOptions() localsearch.Options {
	opts := localsearch.DefaultOptions()
	opts.MaxIter = s.Iterations
	opts.TabuTenure = s.TabuTenure
	opts.TabuPenalty = s.TabuPenalty
	opts.ConflictPenalty = s.ConflictPenalty

	return opts
}

// ParsedStrategy returns the greedy strategy named by Strategy.
func (s SolverConfig) ParsedStrategy() (greedy.Strategy, error) {
	return greedy.ParseStrategy(s.Strategy)
}

// ParsedMethod returns the search method named by Method.
func (s SolverConfig) ParsedMethod() (localsearch.Method, error) {
	return localsearch.ParseMethod(s.Method)
}

// Pipeline builds the experiment pipeline described by s.
func (s SolverConfig) Pipeline() (experiment.Pipeline, error) {
	strategy, err := s.ParsedStrategy()
	if err != nil {
		return experiment.Pipeline{}, fmt.Errorf("Pipeline: %w", err)
	}
	method, err := s.ParsedMethod()
	if err != nil {
		return experiment.Pipeline{}, fmt.Errorf("Pipeline: %w", err)
	}

	return experiment.Pipeline{
		Strategy:       strategy,
		GreedyAttempts: s.GreedyAttempts,
		Method:         method,
		Search:         s.SearchOptions(),
		Restarts:       s.Restarts,
	}, nil
}

// Case builds the experiment case of the configured instance and solver.
func (c *Config) Case() (experiment.Case, error) {
	pl, err := c.Solver.Pipeline()
	if err != nil {
		return experiment.Case{}, err
	}

	return experiment.Case{
		Kind:        c.Instance.Kind,
		Nodes:       c.Instance.Nodes,
		Frequencies: c.Instance.Frequencies,
		Density:     c.Instance.Density,
		Seed:        c.Seed,
		Pipeline:    pl,
	}, nil
}
