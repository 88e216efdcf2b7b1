package exact

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/orienteer/bfs"
	"github.com/katalvlaran/orienteer/core"
)

// ctxCheckEvery is the number of DFS calls between cancellation checks.
const ctxCheckEvery = 4096

// Solve returns the maximum value collectible by agents starting at start
// within budget time steps.
//
// Stage 1 compresses the graph to the start and the reward nodes using BFS
// hop distances. Stage 2 enumerates single-agent activation orders and
// records, for every exact activated set, the best value one agent can earn
// collecting it. Stage 3 closes the table under subsets and combines agents
// over disjoint sets:
//
//	f₁ = best
//	fⱼ[mask] = max over s ⊆ mask of best[s] + fⱼ₋₁[mask \ s]
//
// Agents never interact except by claiming nodes, and arriving earlier
// never lowers a reward, so the combination is exact.
//
// Errors: ErrNilGraph, ErrBadBudget, ErrBadAgents, ErrTooManyRewardNodes,
// *core.LookupError for an unknown start, or the context error.
func Solve(ctx context.Context, g *core.Graph, start string, budget, agents int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if budget < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}
	if agents < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrBadAgents, agents)
	}
	src, err := g.Lookup(start)
	if err != nil {
		return Result{}, fmt.Errorf("exact: start: %w", err)
	}
	n := g.RewardCount()
	if n > MaxRewardNodes {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyRewardNodes, n, MaxRewardNodes)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Stage 1: distances from start (row n) and from every reward node.
	c, err := compress(ctx, g, src, budget)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: best single-agent value per exact set.
	best := make([]int64, 1<<n)
	for i := range best {
		best[i] = -1
	}
	d := &dfs{c: c, best: best, ctx: ctx}
	d.walk(n, budget, 0, 0)
	if d.err != nil {
		return Result{}, d.err
	}

	// Stage 3: subset closure, then agent combination.
	cl, clArg := closure(best)
	layers := make([][]int64, agents)
	args := make([][]uint32, agents)
	layers[0] = cl
	for j := 1; j < agents; j++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		layers[j], args[j] = combine(cl, layers[j-1], n)
	}

	full := uint32(1)<<n - 1
	res := Result{Value: layers[agents-1][full], Sets: make([][]string, agents)}
	mask := full
	for j := agents - 1; j >= 1; j-- {
		s := args[j][mask]
		res.Sets[j] = g.MaskNames(uint64(clArg[s]))
		mask ^= s
	}
	res.Sets[0] = g.MaskNames(uint64(clArg[mask]))

	return res, nil
}

// compressed holds hop distances between reward nodes (0..n-1) and the start (n).
type compressed struct {
	n    int
	rate []int64
	dist [][]int // dist[from][to], bfs.Unreached when not reachable in time
}

// reachDepth is the farthest hop count at which an activation can still
// earn something: arriving h hops out leaves budget-h steps, and one of them
// is spent activating.
func reachDepth(budget int) int {
	return max(budget-2, 1)
}

// compress measures hop distances from the start and from every reward node.
// Searches stop at reachDepth(budget); farther nodes are bfs.Unreached.
func compress(ctx context.Context, g *core.Graph, src, budget int) (*compressed, error) {
	n := g.RewardCount()
	c := &compressed{n: n, rate: make([]int64, n), dist: make([][]int, n+1)}
	targets := make([]int, n)
	for bit := 0; bit < n; bit++ {
		targets[bit] = g.RewardNode(bit)
		c.rate[bit] = int64(g.Rate(targets[bit]))
	}
	for from := 0; from <= n; from++ {
		node := src
		if from < n {
			node = targets[from]
		}
		full, err := bfs.Distances(ctx, g, node, bfs.WithMaxDepth(reachDepth(budget)))
		if err != nil {
			return nil, err
		}
		row := make([]int, n)
		for bit, t := range targets {
			row[bit] = full[t]
		}
		c.dist[from] = row
	}

	return c, nil
}

// dfs enumerates activation orders for one agent.
type dfs struct {
	c     *compressed
	best  []int64
	ctx   context.Context
	calls int
	err   error
}

// walk records value for mask and tries every unactivated reward node
// reachable with time to spare. pos indexes c.dist; n means the start.
func (d *dfs) walk(pos, left int, mask uint32, value int64) {
	if d.err != nil {
		return
	}
	d.calls++
	if d.calls%ctxCheckEvery == 0 {
		if err := d.ctx.Err(); err != nil {
			d.err = err
			return
		}
	}
	if value > d.best[mask] {
		d.best[mask] = value
	}
	for j := 0; j < d.c.n; j++ {
		if mask&(1<<j) != 0 {
			continue
		}
		hops := d.c.dist[pos][j]
		if hops == bfs.Unreached {
			continue
		}
		// Arrive with left-hops remaining, spend one step activating.
		after := left - hops - 1
		if after <= 0 {
			continue
		}
		d.walk(j, after, mask|1<<j, value+d.c.rate[j]*int64(after))
	}
}

// closure returns cl[mask] = max best[s] over s ⊆ mask and the s achieving it.
func closure(best []int64) ([]int64, []uint32) {
	cl := make([]int64, len(best))
	arg := make([]uint32, len(best))
	for mask := range best {
		cl[mask], arg[mask] = best[mask], uint32(mask)
		if cl[mask] < 0 {
			cl[mask], arg[mask] = 0, 0
		}
		for rest := uint32(mask); rest != 0; rest &= rest - 1 {
			sub := uint32(mask) &^ (1 << bits.TrailingZeros32(rest))
			if cl[sub] > cl[mask] {
				cl[mask], arg[mask] = cl[sub], arg[sub]
			}
		}
	}

	return cl, arg
}

// combine adds one agent: out[mask] = max over s ⊆ mask of cl[s] + prev[mask^s].
func combine(cl, prev []int64, n int) ([]int64, []uint32) {
	size := uint32(1) << n
	out := make([]int64, size)
	arg := make([]uint32, size)
	for mask := uint32(0); mask < size; mask++ {
		out[mask], arg[mask] = prev[mask], 0
		for s := mask; s != 0; s = (s - 1) & mask {
			if v := cl[s] + prev[mask^s]; v > out[mask] {
				out[mask], arg[mask] = v, s
			}
		}
	}

	return out, arg
}
