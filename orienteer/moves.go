package orienteer

import (
	"iter"

	"github.com/katalvlaran/orienteer/core"
)

// action is one agent's choice for the next step.
type action struct {
	to       int32
	activate bool
}

// expander is the option generator. It owns per-agent scratch buffers and
// must not be shared between goroutines.
type expander struct {
	g    *core.Graph
	opts [MaxAgents][]action
}

func newExpander(g *core.Graph) *expander {
	return &expander{g: g}
}

// candidates lists the legal actions of agent a in s, appending to buf:
// activation of the current node first, then one move per neighbor in
// record order. An agent with nothing legal idles in place.
func (x *expander) candidates(s State, a int, buf []action) []action {
	cur := int(s.movers[a].To)
	if x.g.Rate(cur) > 0 && !s.isActivated(x.g, cur) {
		buf = append(buf, action{to: int32(cur), activate: true})
	}
	for _, nbr := range x.g.Neighbors(cur) {
		buf = append(buf, action{to: int32(nbr)})
	}
	if len(buf) == 0 {
		buf = append(buf, action{to: int32(cur)})
	}

	return buf
}

// successors lazily yields every successor of s one time step later: the
// cartesian product of the agents' candidate lists, minus combinations in
// which two agents activate the same node. Yields nothing when no time is
// left after the step.
func (x *expander) successors(s State) iter.Seq[State] {
	return func(yield func(State) bool) {
		next := s.time - 1
		if next <= 0 {
			return
		}
		for a := 0; a < int(s.agents); a++ {
			x.opts[a] = x.candidates(s, a, x.opts[a][:0])
		}
		child := State{agents: s.agents, activated: s.activated, time: next, value: s.value}
		x.combine(s, 0, child, yield)
	}
}

// combine fixes the action of agent a and recurses over the remaining
// agents. It returns false once yield asks to stop.
func (x *expander) combine(parent State, a int, acc State, yield func(State) bool) bool {
	if a == int(parent.agents) {
		return yield(acc)
	}
	from := parent.movers[a].To
	for _, act := range x.opts[a] {
		child := acc
		if act.activate {
			bit := uint64(1) << uint(x.g.RewardBit(int(act.to)))
			if child.activated&bit != 0 {
				// Another agent claimed this node in the same step.
				continue
			}
			child.activated |= bit
			child.value += int64(x.g.Rate(int(act.to))) * int64(acc.time)
		}
		child.movers[a] = Mover{From: from, To: act.to}
		if !x.combine(parent, a+1, child, yield) {
			return false
		}
	}

	return true
}

// Successors exposes the option generator for inspection and tests. It
// validates nothing; s must come from a search over g.
func Successors(g *core.Graph, s State) []State {
	var out []State
	for child := range newExpander(g).successors(s) {
		out = append(out, child)
	}

	return out
}
