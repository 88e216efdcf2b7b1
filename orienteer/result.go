package orienteer

import (
	"iter"
	"maps"
)

// aggregate folds retained states into a Result. The representative state is
// the maximum under beats, so the choice does not depend on iteration order.
func aggregate(states iter.Seq[State], partial bool) Result {
	res := Result{Partial: partial}
	first := true
	for s := range states {
		if first || s.beats(res.Best) {
			res.Best = s
			first = false
		}
	}
	res.Value = res.Best.value

	return res
}

// aggregateMap is aggregate over the sequential best-value map.
func aggregateMap(best map[Key]State, partial bool) Result {
	return aggregate(maps.Values(best), partial)
}

// maxValue returns the largest value in best.
func maxValue(best map[Key]State) int64 {
	var v int64
	for _, s := range best {
		if s.value > v {
			v = s.value
		}
	}

	return v
}
