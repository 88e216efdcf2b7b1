package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/builder"
	"github.com/katalvlaran/orienteer/records"
)

// maxPairNames is the number of distinct names AA..ZZ.
const maxPairNames = 26 * 26

func newGenerateCmd(a *app) *cobra.Command {
	var (
		kind       string
		n          int
		rows, cols int
		p          float64
		seed       int64
		rewardProb float64
		minRate    int
		maxRate    int
		format     string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a synthetic graph",
		Long: `Generate a graph topology with random rates. Nodes are named AA, AB, ...
except for grid (r,c) and the star hub (Center).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var con builder.Constructor
			switch kind {
			case "path":
				con = builder.Path(n)
			case "cycle":
				con = builder.Cycle(n)
			case "star":
				con = builder.Star(n)
			case "grid":
				con = builder.Grid(rows, cols)
			case "complete":
				con = builder.Complete(n)
			case "random":
				con = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("unknown kind %q (path|cycle|star|grid|complete|random)", kind)
			}
			f, err := records.ParseFormat(format)
			if err != nil {
				return err
			}
			if rewardProb < 0 || rewardProb > 1 || minRate < 1 || maxRate < minRate {
				return fmt.Errorf("invalid rate policy: reward-prob %.2f, rates [%d,%d]", rewardProb, minRate, maxRate)
			}
			if n > maxPairNames {
				return fmt.Errorf("%w: %d nodes exceed the %d two-letter names", builder.ErrConstructFailed, n, maxPairNames)
			}

			recs, err := builder.BuildRecords([]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithPairIDs(),
				builder.WithRateFn(builder.SparseRateFn(rewardProb, minRate, maxRate)),
			}, con)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			a.log.WithField("kind", kind).WithField("nodes", len(recs)).Debug("graph generated")

			return records.Write(w, recs, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&kind, "kind", "random", "Topology: path|cycle|star|grid|complete|random")
	fs.IntVarP(&n, "nodes", "n", 10, "Node count (all kinds but grid)")
	fs.IntVar(&rows, "rows", 3, "Grid rows")
	fs.IntVar(&cols, "cols", 3, "Grid columns")
	fs.Float64VarP(&p, "prob", "p", 0.3, "Edge probability for random graphs")
	fs.Int64Var(&seed, "seed", 1, "Random seed")
	fs.Float64Var(&rewardProb, "reward-prob", 0.5, "Probability that a node has a positive rate")
	fs.IntVar(&minRate, "min-rate", 1, "Smallest positive rate")
	fs.IntVar(&maxRate, "max-rate", 25, "Largest positive rate")
	fs.StringVar(&format, "format", "text", "Output format: text|yaml|json")
	fs.StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}
