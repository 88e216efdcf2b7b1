package orienteer

import (
	"math/bits"

	"github.com/katalvlaran/orienteer/core"
)

// Mover is one agent's last transition as a pair of arena indices.
// From == To means the agent stayed in place (activation or idle).
type Mover struct {
	From, To int32
}

// State is an immutable search snapshot. It is a plain value: copying a
// State copies everything, and successors are always fresh values.
type State struct {
	movers    [MaxAgents]Mover
	agents    uint8
	activated uint64 // bit i set ⇔ reward node i is activated
	time      int    // steps remaining
	value     int64  // accumulated value
}

// initialState places every agent at start with the full budget.
func initialState(start int, budget, agents int) State {
	s := State{agents: uint8(agents), time: budget}
	for a := 0; a < agents; a++ {
		s.movers[a] = Mover{From: int32(start), To: int32(start)}
	}

	return s
}

// Movers returns the per-agent transitions in agent order.
func (s State) Movers() []Mover {
	out := make([]Mover, s.agents)
	copy(out, s.movers[:s.agents])
	return out
}

// Positions returns the current node of every agent in agent order.
func (s State) Positions() []int {
	out := make([]int, s.agents)
	for a := range out {
		out[a] = int(s.movers[a].To)
	}
	return out
}

// Agents returns the number of agents.
func (s State) Agents() int { return int(s.agents) }

// Mask returns the activated set as a reward-index bit mask.
func (s State) Mask() uint64 { return s.activated }

// Count returns the number of activated nodes.
func (s State) Count() int { return bits.OnesCount64(s.activated) }

// Time returns the steps remaining.
func (s State) Time() int { return s.time }

// Value returns the accumulated value.
func (s State) Value() int64 { return s.value }

// Activated returns the names of activated nodes, sorted.
func (s State) Activated(g *core.Graph) []string { return g.MaskNames(s.activated) }

// isActivated reports whether arena node i is in the activated set.
func (s State) isActivated(g *core.Graph, i int) bool {
	bit := g.RewardBit(i)
	return bit >= 0 && s.activated&(1<<uint(bit)) != 0
}

// beats is a strict total order used to pick Result.Best independently of
// map iteration order: higher value first, then larger mask, then more time
// remaining, then movers in agent order.
func (s State) beats(o State) bool {
	if s.value != o.value {
		return s.value > o.value
	}
	if s.activated != o.activated {
		return s.activated > o.activated
	}
	if s.time != o.time {
		return s.time > o.time
	}
	for a := 0; a < int(s.agents); a++ {
		if s.movers[a] != o.movers[a] {
			if s.movers[a].From != o.movers[a].From {
				return s.movers[a].From < o.movers[a].From
			}
			return s.movers[a].To < o.movers[a].To
		}
	}

	return false
}
