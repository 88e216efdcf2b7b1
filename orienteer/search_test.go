package orienteer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/orienteer"
)

// SearchSuite covers the sequential engine.
type SearchSuite struct {
	suite.Suite
	line    *core.Graph
	tunnels *core.Graph
}

func (s *SearchSuite) SetupSuite() {
	s.line = core.MustBuild(lineRecords())
	s.tunnels = core.MustBuild(tunnelRecords())
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func (s *SearchSuite) TestGolden() {
	cases := []struct {
		name string
		g    *core.Graph
		q    orienteer.Query
		want int64
	}{
		{"line/T6/one", s.line, orienteer.Query{Start: "A", Budget: 6, Agents: 1}, 56},
		{"line/T5/two", s.line, orienteer.Query{Start: "A", Budget: 5, Agents: 2}, 43},
		{"tunnels/T30/one", s.tunnels, orienteer.Query{Start: "AA", Budget: 30, Agents: 1}, 1651},
		{"tunnels/T26/two", s.tunnels, orienteer.Query{Start: "AA", Budget: 26, Agents: 2}, 1707},
	}
	for _, tc := range cases {
		for _, dom := range []orienteer.Dominance{orienteer.DominanceCount, orienteer.DominanceSet} {
			s.Run(tc.name+"/"+dom.String(), func() {
				res := search(s.T(), tc.g, tc.q, orienteer.WithDominance(dom))
				s.Equal(tc.want, res.Value)
				s.Equal(tc.want, res.Best.Value())
			})
		}
	}
}

func (s *SearchSuite) TestBestState() {
	res := search(s.T(), s.line, orienteer.Query{Start: "A", Budget: 6, Agents: 1})
	s.Equal([]string{"B", "C"}, res.Best.Activated(s.line))
	s.Equal(2, res.Best.Count())
}

func (s *SearchSuite) TestBudgetTooShort() {
	for _, budget := range []int{1, 2} {
		res := search(s.T(), s.line, orienteer.Query{Start: "A", Budget: budget, Agents: 1})
		s.Zero(res.Value, "budget %d", budget)
	}
}

func (s *SearchSuite) TestAllZeroRates() {
	recs := tunnelRecords()
	for i := range recs {
		recs[i].Rate = 0
	}
	g := core.MustBuild(recs)
	res := search(s.T(), g, orienteer.Query{Start: "AA", Budget: 10, Agents: 2})
	s.Zero(res.Value)
}

// TestSingleReward checks R×(T−2) for a reward node one move away.
func (s *SearchSuite) TestSingleReward() {
	const rate = 9
	g := core.MustBuild(pairRecords(rate))
	for budget := 3; budget <= 12; budget++ {
		v, err := orienteer.MaxValue(g, "S", budget, 1)
		s.Require().NoError(err)
		s.Equal(int64(rate*(budget-2)), v, "budget %d", budget)
	}
}

// TestBudgetMonotone checks that more time never lowers the optimum.
func (s *SearchSuite) TestBudgetMonotone() {
	prev := int64(0)
	for budget := 1; budget <= 14; budget++ {
		res := search(s.T(), s.tunnels, orienteer.Query{Start: "AA", Budget: budget, Agents: 1},
			orienteer.WithDominance(orienteer.DominanceSet))
		s.GreaterOrEqual(res.Value, prev, "budget %d", budget)
		prev = res.Value
	}
}

// TestAgentsMonotone checks that an extra agent never lowers the optimum.
func (s *SearchSuite) TestAgentsMonotone() {
	prev := int64(0)
	for agents := 1; agents <= 3; agents++ {
		res := search(s.T(), s.tunnels, orienteer.Query{Start: "AA", Budget: 7, Agents: agents},
			orienteer.WithDominance(orienteer.DominanceSet))
		s.GreaterOrEqual(res.Value, prev, "agents %d", agents)
		prev = res.Value
	}
}

// TestBruteForce compares both strategies with unpruned enumeration.
func (s *SearchSuite) TestBruteForce() {
	cases := []struct {
		g *core.Graph
		q orienteer.Query
	}{
		{s.line, orienteer.Query{Start: "A", Budget: 7, Agents: 1}},
		{s.line, orienteer.Query{Start: "A", Budget: 6, Agents: 2}},
		{s.tunnels, orienteer.Query{Start: "AA", Budget: 8, Agents: 1}},
		{s.tunnels, orienteer.Query{Start: "AA", Budget: 5, Agents: 2}},
	}
	for _, tc := range cases {
		want := bruteForce(tc.g, initial(s.T(), tc.g, tc.q))
		set := search(s.T(), tc.g, tc.q, orienteer.WithDominance(orienteer.DominanceSet))
		s.Equal(want, set.Value, "%+v", tc.q)
		count := search(s.T(), tc.g, tc.q)
		s.LessOrEqual(count.Value, want, "%+v", tc.q)
	}
}

func (s *SearchSuite) TestDeterministic() {
	q := orienteer.Query{Start: "AA", Budget: 20, Agents: 2}
	a := search(s.T(), s.tunnels, q)
	b := search(s.T(), s.tunnels, q)
	s.Equal(a.Value, b.Value)
	s.Equal(a.Best, b.Best)
	s.Equal(a.Stats.Retained, b.Stats.Retained)
}

func (s *SearchSuite) TestValidation() {
	ctx := context.Background()
	cases := []struct {
		name string
		g    *core.Graph
		q    orienteer.Query
		opts []orienteer.Option
		want error
	}{
		{"nil graph", nil, orienteer.Query{Start: "A", Budget: 5, Agents: 1}, nil, orienteer.ErrNilGraph},
		{"zero budget", s.line, orienteer.Query{Start: "A", Budget: 0, Agents: 1}, nil, orienteer.ErrBadBudget},
		{"zero agents", s.line, orienteer.Query{Start: "A", Budget: 5, Agents: 0}, nil, orienteer.ErrBadAgents},
		{"too many agents", s.line, orienteer.Query{Start: "A", Budget: 5, Agents: orienteer.MaxAgents + 1}, nil, orienteer.ErrBadAgents},
		{"unknown start", s.line, orienteer.Query{Start: "ZZ", Budget: 5, Agents: 1}, nil, core.ErrNodeNotFound},
		{"zero workers", s.line, orienteer.Query{Start: "A", Budget: 5, Agents: 1},
			[]orienteer.Option{orienteer.WithWorkers(0)}, orienteer.ErrOptionViolation},
		{"negative max states", s.line, orienteer.Query{Start: "A", Budget: 5, Agents: 1},
			[]orienteer.Option{orienteer.WithMaxStates(-1)}, orienteer.ErrOptionViolation},
		{"negative time limit", s.line, orienteer.Query{Start: "A", Budget: 5, Agents: 1},
			[]orienteer.Option{orienteer.WithTimeLimit(-time.Second)}, orienteer.ErrOptionViolation},
		{"unknown dominance", s.line, orienteer.Query{Start: "A", Budget: 5, Agents: 1},
			[]orienteer.Option{orienteer.WithDominance(orienteer.Dominance(9))}, orienteer.ErrOptionViolation},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := orienteer.Search(ctx, tc.g, tc.q, tc.opts...)
			s.ErrorIs(err, tc.want)
		})
	}

	_, err := orienteer.Search(ctx, s.line, orienteer.Query{Start: "ZZ", Budget: 5, Agents: 1})
	var lookup *core.LookupError
	s.Require().ErrorAs(err, &lookup)
	s.Equal("ZZ", lookup.Name)
}

func (s *SearchSuite) TestPhases() {
	e, err := orienteer.NewEngine(s.line, orienteer.Query{Start: "A", Budget: 6, Agents: 1})
	s.Require().NoError(err)
	s.Equal(orienteer.PhaseInitialized, e.Phase())

	res, err := e.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(56), res.Value)
	s.Equal(orienteer.PhaseDone, e.Phase())

	_, err = e.Run(context.Background())
	s.ErrorIs(err, orienteer.ErrAlreadyRun)
}

func (s *SearchSuite) TestBudgetExceeded() {
	res, err := orienteer.Search(context.Background(), s.tunnels,
		orienteer.Query{Start: "AA", Budget: 30, Agents: 2}, orienteer.WithMaxStates(50))
	s.ErrorIs(err, orienteer.ErrBudgetExceeded)
	s.True(res.Partial)
	s.Greater(res.Stats.Retained, 50)
}

func (s *SearchSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := orienteer.Search(ctx, s.tunnels, orienteer.Query{Start: "AA", Budget: 30, Agents: 2})
	s.ErrorIs(err, orienteer.ErrInterrupted)
	s.ErrorIs(err, context.Canceled)
	s.True(res.Partial)
	s.Zero(res.Value)
}

// TestCancelMidSearch cancels from inside the level hook.
func (s *SearchSuite) TestCancelMidSearch() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	levels := 0
	res, err := orienteer.Search(ctx, s.tunnels, orienteer.Query{Start: "AA", Budget: 30, Agents: 1},
		orienteer.WithDominance(orienteer.DominanceSet),
		orienteer.WithOnLevel(func(orienteer.LevelInfo) {
			levels++
			if levels == 10 {
				cancel()
			}
		}))
	s.ErrorIs(err, orienteer.ErrInterrupted)
	s.True(res.Partial)
	s.LessOrEqual(res.Value, int64(1651))
}

func (s *SearchSuite) TestTimeLimit() {
	res, err := orienteer.Search(context.Background(), s.tunnels,
		orienteer.Query{Start: "AA", Budget: 30, Agents: 1}, orienteer.WithTimeLimit(time.Nanosecond),
		orienteer.WithOnLevel(func(orienteer.LevelInfo) { time.Sleep(time.Millisecond) }))
	s.ErrorIs(err, orienteer.ErrInterrupted)
	s.ErrorIs(err, context.DeadlineExceeded)
	s.True(res.Partial)
}

func (s *SearchSuite) TestLevelsAndObserver() {
	obs := &recordingObserver{}
	var infos []orienteer.LevelInfo
	res := search(s.T(), s.tunnels, orienteer.Query{Start: "AA", Budget: 10, Agents: 1},
		orienteer.WithDominance(orienteer.DominanceSet),
		orienteer.WithObserver(obs),
		orienteer.WithOnLevel(func(li orienteer.LevelInfo) { infos = append(infos, li) }))

	s.Require().Len(obs.stats, 1)
	s.NoError(obs.errs[0])
	s.Equal(res.Value, obs.values[0])
	s.Equal(res.Stats, obs.stats[0])

	s.Require().Len(infos, 9) // time 10 down to 2
	for i, li := range infos {
		s.Equal(10-i, li.TimeRemaining)
		if i > 0 {
			s.GreaterOrEqual(li.Best, infos[i-1].Best)
		}
	}
	s.Equal(9, res.Stats.Levels)
	s.Positive(res.Stats.Expanded)
	s.GreaterOrEqual(res.Stats.Generated, res.Stats.Admitted+res.Stats.Improved)
	s.Equal(orienteer.DominanceSet, res.Stats.Dominance)
}

func (s *SearchSuite) TestObserverSeesFailures() {
	obs := &recordingObserver{}
	_, err := orienteer.Search(context.Background(), s.tunnels,
		orienteer.Query{Start: "AA", Budget: 30, Agents: 2},
		orienteer.WithMaxStates(10), orienteer.WithObserver(obs))
	s.Require().Error(err)
	s.Require().Len(obs.errs, 1)
	s.True(errors.Is(obs.errs[0], orienteer.ErrBudgetExceeded))
}

func TestSearch_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := core.MustBuild(lineRecords())
	_, err := orienteer.Search(context.Background(), g, orienteer.Query{Start: "A", Budget: 6, Agents: 1},
		orienteer.WithLogger(logger))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, "search started", entries[0].Message)
	last := hook.LastEntry()
	require.Equal(t, "search finished", last.Message)
	require.Equal(t, logrus.InfoLevel, last.Level)
	require.Equal(t, int64(56), last.Data["value"])
	require.Equal(t, "count", last.Data["dominance"])
}

func TestParseDominance(t *testing.T) {
	d, err := orienteer.ParseDominance("")
	require.NoError(t, err)
	require.Equal(t, orienteer.DominanceCount, d)

	d, err = orienteer.ParseDominance("set")
	require.NoError(t, err)
	require.Equal(t, orienteer.DominanceSet, d)

	_, err = orienteer.ParseDominance("exact")
	require.ErrorIs(t, err, orienteer.ErrOptionViolation)
}
