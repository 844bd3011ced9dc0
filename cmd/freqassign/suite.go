package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/freqassign/experiment"
)

func newSuiteCmd(a *app) *cobra.Command {
	var groups []string
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Run the systematic experiments",
		Long: `suite runs the standard experiment groups on random instances with density
0.3 and prints one row per run:

  vary-n      n in 10, 20, 30, 50, 100 with k=4
  vary-k      k in 2, 3, 4, 6, 8 with n=20
  strategies  every greedy strategy alone at n=30, k=4
  methods     every search method at n=40, k=5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.suite(cmd, groups)
		},
	}
	cmd.Flags().StringSliceVar(&groups, "group", nil, "run only these groups (repeatable)")

	return cmd
}

func (a *app) suite(cmd *cobra.Command, groups []string) error {
	cases, err := selectCases(experiment.Plan(), groups)
	if err != nil {
		return err
	}

	col, stop := a.startMetrics(cmd.Context())
	defer stop()

	rep, err := a.runner(col).Suite(cmd.Context(), cases)
	if werr := experiment.WriteSummary(cmd.OutOrStdout(), rep.Outcomes); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return err
	}

	return a.writeReport(rep)
}

// selectCases keeps the cases of the named groups; no names keeps all.
func selectCases(cases []experiment.Case, groups []string) ([]experiment.Case, error) {
	if len(groups) == 0 {
		return cases, nil
	}

	var known []string
	for _, c := range cases {
		if !slices.Contains(known, c.Group) {
			known = append(known, c.Group)
		}
	}
	for _, g := range groups {
		if !slices.Contains(known, g) {
			return nil, fmt.Errorf("unknown group %q (known: %v)", g, known)
		}
	}

	return slices.DeleteFunc(slices.Clone(cases), func(c experiment.Case) bool {
		return !slices.Contains(groups, c.Group)
	}), nil
}
