package exact_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/exact"
)

// tunnels is the ten-node sample network with six reward nodes.
func tunnels() []core.Record {
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

// line is A(0)–B(13)–C(2).
func line() []core.Record {
	return []core.Record{
		{Name: "A", Rate: 0, Neighbors: []string{"B"}},
		{Name: "B", Rate: 13, Neighbors: []string{"A", "C"}},
		{Name: "C", Rate: 2, Neighbors: []string{"B"}},
	}
}

func TestSolve_Golden(t *testing.T) {
	cases := []struct {
		name    string
		records []core.Record
		start   string
		budget  int
		agents  int
		want    int64
	}{
		{"line/T6/one", line(), "A", 6, 1, 56},
		{"line/T5/two", line(), "A", 5, 2, 43},
		{"line/T1", line(), "A", 1, 1, 0},
		{"line/T2", line(), "A", 2, 1, 0},
		{"tunnels/T30/one", tunnels(), "AA", 30, 1, 1651},
		{"tunnels/T26/two", tunnels(), "AA", 26, 2, 1707},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.MustBuild(tc.records)
			res, err := exact.Solve(context.Background(), g, tc.start, tc.budget, tc.agents)
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Value)
			require.Len(t, res.Sets, tc.agents)
		})
	}
}

// TestSolve_SingleNode checks R×(T−2) for one reward node one move away.
func TestSolve_SingleNode(t *testing.T) {
	g := core.MustBuild([]core.Record{
		{Name: "S", Neighbors: []string{"R"}},
		{Name: "R", Rate: 7, Neighbors: []string{"S"}},
	})
	for budget := 3; budget <= 10; budget++ {
		res, err := exact.Solve(context.Background(), g, "S", budget, 1)
		require.NoError(t, err)
		require.Equal(t, int64(7*(budget-2)), res.Value, "budget %d", budget)
		require.Equal(t, []string{"R"}, res.Sets[0])
	}
}

// TestSolve_DisjointSets checks that the reported assignment is disjoint
// and covers the value.
func TestSolve_DisjointSets(t *testing.T) {
	g := core.MustBuild(tunnels())
	res, err := exact.Solve(context.Background(), g, "AA", 26, 2)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, set := range res.Sets {
		require.NotEmpty(t, set)
		for _, name := range set {
			require.False(t, seen[name], "node %s assigned twice", name)
			seen[name] = true
		}
	}
}

// TestSolve_AgentsMonotone checks more agents never lose value.
func TestSolve_AgentsMonotone(t *testing.T) {
	g := core.MustBuild(tunnels())
	prev := int64(-1)
	for agents := 1; agents <= 4; agents++ {
		res, err := exact.Solve(context.Background(), g, "AA", 12, agents)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Value, prev)
		prev = res.Value
	}
}

func TestSolve_Errors(t *testing.T) {
	g := core.MustBuild(line())
	ctx := context.Background()

	_, err := exact.Solve(ctx, nil, "A", 5, 1)
	require.ErrorIs(t, err, exact.ErrNilGraph)

	_, err = exact.Solve(ctx, g, "A", 0, 1)
	require.ErrorIs(t, err, exact.ErrBadBudget)

	_, err = exact.Solve(ctx, g, "A", 5, 0)
	require.ErrorIs(t, err, exact.ErrBadAgents)

	_, err = exact.Solve(ctx, g, "ZZ", 5, 1)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	var many []core.Record
	for i := 0; i <= exact.MaxRewardNodes; i++ {
		many = append(many, core.Record{Name: string(rune('a' + i)), Rate: 1})
	}
	_, err = exact.Solve(ctx, core.MustBuild(many), "a", 5, 1)
	require.ErrorIs(t, err, exact.ErrTooManyRewardNodes)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := exact.Solve(ctx, core.MustBuild(tunnels()), "AA", 30, 1)
	require.ErrorIs(t, err, context.Canceled)
}
