package dfa

import "github.com/coregx/wdfa/internal/sparse"

// Prune returns an automaton restricted to the states reachable from the
// initial state, renumbered to the contiguous range 1..N. Transition weights
// and relative transition structure are preserved; unreachable states are
// silently dropped. Prune is idempotent up to the canonical renumbering.
//
// Reachability is computed with an explicit-stack depth-first traversal over
// the full alphabet. States are marked visited before their successors are
// pushed, so self-loops and longer cycles terminate. The visited set and
// stack are transient; nothing escapes the call.
//
// Reachable labels are renumbered in ascending original-label order, which
// makes the result independent of traversal order.
func Prune[W any](d *DFA[W]) *DFA[W] {
	numStates := d.states.Len()

	// DFS over relative state indices (label - states.Min).
	visited := sparse.NewSet(numStates)
	stack := make([]int, 0, 16)
	visited.Insert(0)
	stack = append(stack, 0)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		base := s * d.stride
		for c := 0; c < d.stride; c++ {
			next := d.table[base+c].Next - d.states.Min
			if visited.Insert(next) {
				stack = append(stack, next)
			}
		}
	}

	// Assign new labels 1..N in ascending original order.
	n := visited.Len()
	remap := make([]int, numStates)
	order := make([]int, 0, n)
	for s := 0; s < numStates; s++ {
		if visited.Contains(s) {
			order = append(order, s)
			remap[s] = len(order)
		}
	}

	// Rebuild the table over the new labels.
	table := make([]Transition[W], n*d.stride)
	i := 0
	for _, s := range order {
		base := s * d.stride
		for c := 0; c < d.stride; c++ {
			t := d.table[base+c]
			table[i] = Transition[W]{Next: remap[t.Next-d.states.Min], Weight: t.Weight}
			i++
		}
	}
	return &DFA[W]{
		states:  Bounds{Min: 1, Max: n},
		symbols: d.symbols,
		stride:  d.stride,
		table:   table,
	}
}
