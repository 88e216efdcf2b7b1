package orienteer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/orienteer"
)

// lineRecords is A(0)–B(13)–C(2).
func lineRecords() []core.Record {
	return []core.Record{
		{Name: "A", Rate: 0, Neighbors: []string{"B"}},
		{Name: "B", Rate: 13, Neighbors: []string{"A", "C"}},
		{Name: "C", Rate: 2, Neighbors: []string{"B"}},
	}
}

// tunnelRecords is the ten-node sample network.
func tunnelRecords() []core.Record {
	return []core.Record{
		{Name: "AA", Rate: 0, Neighbors: []string{"DD", "II", "BB"}},
		{Name: "BB", Rate: 13, Neighbors: []string{"CC", "AA"}},
		{Name: "CC", Rate: 2, Neighbors: []string{"DD", "BB"}},
		{Name: "DD", Rate: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{Name: "EE", Rate: 3, Neighbors: []string{"FF", "DD"}},
		{Name: "FF", Rate: 0, Neighbors: []string{"EE", "GG"}},
		{Name: "GG", Rate: 0, Neighbors: []string{"FF", "HH"}},
		{Name: "HH", Rate: 22, Neighbors: []string{"GG"}},
		{Name: "II", Rate: 0, Neighbors: []string{"AA", "JJ"}},
		{Name: "JJ", Rate: 21, Neighbors: []string{"II"}},
	}
}

// pairRecords is S(0)–R(rate): one reward node one move from the start.
func pairRecords(rate int) []core.Record {
	return []core.Record{
		{Name: "S", Rate: 0, Neighbors: []string{"R"}},
		{Name: "R", Rate: rate, Neighbors: []string{"S"}},
	}
}

// initial returns the initial state of a query.
func initial(t testing.TB, g *core.Graph, q orienteer.Query) orienteer.State {
	t.Helper()
	e, err := orienteer.NewEngine(g, q)
	require.NoError(t, err)
	return e.Initial()
}

// bruteForce explores every joint action sequence without pruning.
func bruteForce(g *core.Graph, s orienteer.State) int64 {
	best := s.Value()
	for _, child := range orienteer.Successors(g, s) {
		if v := bruteForce(g, child); v > best {
			best = v
		}
	}
	return best
}

// search runs one query and fails the test on error.
func search(t testing.TB, g *core.Graph, q orienteer.Query, opts ...orienteer.Option) orienteer.Result {
	t.Helper()
	res, err := orienteer.Search(context.Background(), g, q, opts...)
	require.NoError(t, err)
	require.False(t, res.Partial)
	return res
}

// recordingObserver keeps every observation.
type recordingObserver struct {
	stats  []orienteer.Stats
	values []int64
	errs   []error
}

func (r *recordingObserver) ObserveSearch(stats orienteer.Stats, value int64, err error) {
	r.stats = append(r.stats, stats)
	r.values = append(r.values, value)
	r.errs = append(r.errs, err)
}
