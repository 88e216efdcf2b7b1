// Package cache memoizes search results keyed by a fingerprint of the graph
// and query.
//
// Only complete results are stored: a Partial result is a lower bound and
// would poison later lookups.
package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/orienteer"
)

var (
	// ErrMiss is returned by Store.Get when no entry exists for a key.
	ErrMiss = errors.New("cache: miss")

	// ErrStore wraps backend failures reported by Search. The Entry
	// returned alongside it is still valid.
	ErrStore = errors.New("cache: store failure")
)

// Entry is a cached search outcome.
type Entry struct {
	Value     int64     `json:"value"`
	Activated []string  `json:"activated"`
	Dominance string    `json:"dominance"`
	Expanded  int64     `json:"expanded"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists entries by fingerprint.
type Store interface {
	Get(ctx context.Context, key uint64) (Entry, error)
	Put(ctx context.Context, key uint64, e Entry) error
}

// Fingerprint hashes every input that influences a search result: the node
// records in arena order, the query and the dominance strategy. The worker
// count is not hashed: every worker count yields the same Result.
func Fingerprint(g *core.Graph, q orienteer.Query, d orienteer.Dominance) uint64 {
	h := xxhash.New()
	var num [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(num[:], uint64(v))
		_, _ = h.Write(num[:])
	}
	putStr := func(s string) {
		putInt(len(s))
		_, _ = h.WriteString(s)
	}

	putInt(g.Len())
	for i := 0; i < g.Len(); i++ {
		putStr(g.Name(i))
		putInt(g.Rate(i))
		nbrs := g.Neighbors(i)
		putInt(len(nbrs))
		for _, n := range nbrs {
			putInt(n)
		}
	}
	putStr(q.Start)
	putInt(q.Budget)
	putInt(q.Agents)
	putInt(int(d))

	return h.Sum64()
}

// Search consults st before running a search with dominance d. A hit skips
// the search entirely; a complete result is stored on a miss.
//
// Backend failures do not fail the search: a Get failure is treated as a
// miss, and both are reported as an error wrapping ErrStore next to a valid
// Entry. Search errors take precedence and are returned unwrapped.
func Search(ctx context.Context, st Store, g *core.Graph, q orienteer.Query, d orienteer.Dominance, opts ...orienteer.Option) (Entry, bool, error) {
	if g == nil {
		return Entry{}, false, orienteer.ErrNilGraph
	}
	key := Fingerprint(g, q, d)
	var storeErr error
	e, err := st.Get(ctx, key)
	switch {
	case err == nil:
		return e, true, nil
	case !errors.Is(err, ErrMiss):
		storeErr = fmt.Errorf("%w: get: %w", ErrStore, err)
	}

	opts = append(opts[:len(opts):len(opts)], orienteer.WithDominance(d))
	res, err := orienteer.Search(ctx, g, q, opts...)
	e = Entry{
		Value:     res.Value,
		Activated: res.Best.Activated(g),
		Dominance: d.String(),
		Expanded:  res.Stats.Expanded,
		CreatedAt: time.Now().UTC(),
	}
	if err != nil || res.Partial {
		return e, false, err
	}
	if err := st.Put(ctx, key, e); err != nil {
		storeErr = errors.Join(storeErr, fmt.Errorf("%w: put: %w", ErrStore, err))
	}

	return e, false, storeErr
}
