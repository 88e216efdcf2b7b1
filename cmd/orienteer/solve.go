package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/cache"
	"github.com/katalvlaran/orienteer/config"
	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/metrics"
	"github.com/katalvlaran/orienteer/orienteer"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		q          queryFlags
		cacheKind  string
		metricsOut string
		explain    bool
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the maximum collectible value",
		Long: `Parse a graph (stdin by default) and print the maximum value the agents can
collect. An interrupted search prints the best value found so far and exits
non-zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("cache") {
				cfg.Cache.Backend = cacheKind
			}
			if cmd.Flags().Changed("metrics-out") {
				cfg.MetricsOut = metricsOut
			}
			if err := q.apply(cmd.Flags(), &cfg); err != nil {
				return err
			}
			g, err := readGraph(cmd, args, q.format)
			if err != nil {
				return err
			}
			log := a.log.WithFields(logrus.Fields{"nodes": g.Len(), "reward_nodes": g.RewardCount()})

			opts, err := cfg.SearchOptions()
			if err != nil {
				return err
			}
			opts = append(opts, orienteer.WithLogger(log))
			var reg *metrics.Registry
			if cfg.MetricsOut != "" {
				reg = metrics.New()
				opts = append(opts, orienteer.WithObserver(reg))
			}

			value, activated, err := solve(cmd.Context(), cfg, log, g, opts)
			if err != nil && !errors.Is(err, orienteer.ErrInterrupted) && !errors.Is(err, orienteer.ErrBudgetExceeded) {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			if explain {
				fmt.Fprintln(cmd.OutOrStdout(), activated)
			}
			if reg != nil {
				if werr := reg.WriteTextfile(cfg.MetricsOut); werr != nil {
					return errors.Join(err, fmt.Errorf("writing metrics: %w", werr))
				}
			}

			return err
		},
	}

	q.register(cmd.Flags())
	cmd.Flags().StringVar(&cacheKind, "cache", "", "Result cache: none|redis (redis address from config)")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this textfile")
	cmd.Flags().BoolVar(&explain, "explain", false, "Also print the activated nodes of the best state")

	return cmd
}

// solve runs the search, through the configured cache when there is one.
func solve(ctx context.Context, cfg config.Config, log logrus.FieldLogger, g *core.Graph, opts []orienteer.Option) (int64, []string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	store, closeStore, err := openStore(ctx, cfg.Cache)
	if err != nil {
		return 0, nil, err
	}
	defer closeStore()

	if store == nil {
		res, err := orienteer.Search(ctx, g, cfg.Query(), opts...)
		return res.Value, res.Best.Activated(g), err
	}

	d, err := cfg.Dominance()
	if err != nil {
		return 0, nil, err
	}
	e, hit, err := cache.Search(ctx, store, g, cfg.Query(), d, opts...)
	if errors.Is(err, cache.ErrStore) {
		log.WithError(err).Warn("result cache unavailable")
		err = nil
	}
	log.WithField("cache_hit", hit).Debug("cache consulted")

	return e.Value, e.Activated, err
}

// openStore builds the configured cache backend; nil means caching is off.
// Only Redis outlives a single run, so it is the one backend offered here.
func openStore(ctx context.Context, c config.Cache) (cache.Store, func(), error) {
	switch c.Backend {
	case "redis":
		r, err := cache.DialRedis(ctx, c.RedisAddr, cache.WithPrefix(c.Prefix), cache.WithTTL(c.TTL))
		if err != nil {
			return nil, func() {}, err
		}
		return r, func() { _ = r.Close() }, nil
	default:
		return nil, func() {}, nil
	}
}
