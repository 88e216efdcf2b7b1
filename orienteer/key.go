package orienteer

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/orienteer/core"
)

// Key is the canonical dominance signature of a State.
//
// Movers are sorted by (From name, To name) so that permuting the
// interchangeable agents yields the same Key. The tail depends on the
// Dominance strategy: DominanceCount fills only count, DominanceSet fills
// mask and time as well.
type Key struct {
	movers [MaxAgents]Mover
	agents uint8
	count  uint8
	mask   uint64
	time   int32
}

// keyer derives keys for one graph and strategy.
type keyer struct {
	g   *core.Graph
	dom Dominance
}

// key returns the canonical key of s.
func (k keyer) key(s State) Key {
	out := Key{agents: s.agents, count: uint8(bits.OnesCount64(s.activated))}
	copy(out.movers[:], s.movers[:s.agents])

	// Insertion sort: at most MaxAgents elements.
	n := int(s.agents)
	for i := 1; i < n; i++ {
		for j := i; j > 0 && k.less(out.movers[j], out.movers[j-1]); j-- {
			out.movers[j], out.movers[j-1] = out.movers[j-1], out.movers[j]
		}
	}

	if k.dom == DominanceSet {
		out.mask = s.activated
		out.time = int32(s.time)
	}

	return out
}

// less orders movers lexicographically by node names via precomputed ranks.
func (k keyer) less(a, b Mover) bool {
	ra, rb := k.g.NameRank(int(a.From)), k.g.NameRank(int(b.From))
	if ra != rb {
		return ra < rb
	}

	return k.g.NameRank(int(a.To)) < k.g.NameRank(int(b.To))
}

// Movers returns the sorted movers of the key.
func (k Key) Movers() []Mover {
	out := make([]Mover, k.agents)
	copy(out, k.movers[:k.agents])
	return out
}

// Count returns the number of activated nodes recorded by the key.
func (k Key) Count() int { return int(k.count) }

// hash returns a 64-bit digest of the key, used for shard selection.
func (k Key) hash() uint64 {
	var buf [MaxAgents*8 + 14]byte
	off := 0
	for a := 0; a < MaxAgents; a++ {
		binary.LittleEndian.PutUint32(buf[off:], uint32(k.movers[a].From))
		binary.LittleEndian.PutUint32(buf[off+4:], uint32(k.movers[a].To))
		off += 8
	}
	buf[off] = k.agents
	buf[off+1] = k.count
	binary.LittleEndian.PutUint64(buf[off+2:], k.mask)
	binary.LittleEndian.PutUint32(buf[off+10:], uint32(k.time))

	return xxhash.Sum64(buf[:])
}
