package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/exact"
	"github.com/katalvlaran/orienteer/orienteer"
)

// errMismatch is returned when the engine and the exact solver disagree.
var errMismatch = errors.New("verify: engine value differs from exact optimum")

func newVerifyCmd(a *app) *cobra.Command {
	var q queryFlags

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Compare the search engine with the exact solver",
		Long: `Run the configured search and the exact subset solver on the same graph and
query. Exits non-zero when the values differ. The exact solver supports at
most 16 reward nodes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if err := q.apply(cmd.Flags(), &cfg); err != nil {
				return err
			}
			g, err := readGraph(cmd, args, q.format)
			if err != nil {
				return err
			}
			opts, err := cfg.SearchOptions()
			if err != nil {
				return err
			}
			opts = append(opts, orienteer.WithLogger(a.log))

			res, err := orienteer.Search(cmd.Context(), g, cfg.Query(), opts...)
			if err != nil {
				return err
			}
			opt, err := exact.Solve(cmd.Context(), g, cfg.Start, cfg.Budget, cfg.Agents)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "engine %d (%s)\n", res.Value, cfg.Strategy)
			fmt.Fprintf(out, "exact  %d %v\n", opt.Value, opt.Sets)
			log := a.log.WithField("engine", res.Value).WithField("exact", opt.Value)
			if res.Value != opt.Value {
				log.Warn("values differ")
				return fmt.Errorf("%w: %d != %d", errMismatch, res.Value, opt.Value)
			}
			log.Info("values agree")

			return nil
		},
	}
	q.register(cmd.Flags())

	return cmd
}
