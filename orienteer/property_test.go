package orienteer_test

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/orienteer/builder"
	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/exact"
	"github.com/katalvlaran/orienteer/orienteer"
)

// randomGraph builds a small symmetric network named AA, AB, ... with
// sparse rates.
func randomGraph(seed int64, n int) (*core.Graph, error) {
	return builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithPairIDs(),
			builder.WithRateFn(builder.SparseRateFn(0.6, 1, 20)),
		},
		builder.RandomSparse(n, 0.5),
	)
}

// TestSearchProperties cross-checks the engine against the exact solver on
// random graphs.
func TestSearchProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)
	ctx := context.Background()

	properties.Property("full-set dominance equals the exact optimum", prop.ForAll(
		func(seed int64, n, budget, agents int) bool {
			g, err := randomGraph(seed, n)
			if err != nil {
				return false
			}
			want, err := exact.Solve(ctx, g, "AA", budget, agents)
			if err != nil {
				return false
			}
			q := orienteer.Query{Start: "AA", Budget: budget, Agents: agents}
			seq, err := orienteer.Search(ctx, g, q, orienteer.WithDominance(orienteer.DominanceSet))
			if err != nil || seq.Value != want.Value {
				return false
			}
			par, err := orienteer.Search(ctx, g, q,
				orienteer.WithDominance(orienteer.DominanceSet), orienteer.WithWorkers(3))
			return err == nil && par.Value == want.Value
		},
		gen.Int64Range(1, 1<<40),
		gen.IntRange(2, 7),
		gen.IntRange(1, 9),
		gen.IntRange(1, 2),
	))

	properties.Property("count dominance never exceeds the exact optimum", prop.ForAll(
		func(seed int64, n, budget, agents int) bool {
			g, err := randomGraph(seed, n)
			if err != nil {
				return false
			}
			want, err := exact.Solve(ctx, g, "AA", budget, agents)
			if err != nil {
				return false
			}
			q := orienteer.Query{Start: "AA", Budget: budget, Agents: agents}
			seq, err := orienteer.Search(ctx, g, q)
			if err != nil || seq.Value > want.Value || seq.Value < 0 {
				return false
			}
			par, err := orienteer.Search(ctx, g, q, orienteer.WithWorkers(2))
			return err == nil && par.Value <= want.Value
		},
		gen.Int64Range(1, 1<<40),
		gen.IntRange(2, 8),
		gen.IntRange(1, 12),
		gen.IntRange(1, 2),
	))

	properties.Property("one more step never lowers the optimum", prop.ForAll(
		func(seed int64, n, budget int) bool {
			g, err := randomGraph(seed, n)
			if err != nil {
				return false
			}
			opt := orienteer.WithDominance(orienteer.DominanceSet)
			a, err := orienteer.MaxValue(g, "AA", budget, 1, opt)
			if err != nil {
				return false
			}
			b, err := orienteer.MaxValue(g, "AA", budget+1, 1, opt)
			return err == nil && b >= a
		},
		gen.Int64Range(1, 1<<40),
		gen.IntRange(2, 7),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}
