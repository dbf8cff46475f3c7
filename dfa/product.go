package dfa

import (
	"fmt"

	"github.com/coregx/wdfa/internal/conv"
)

// Intersect builds the synchronized product of a and b: from joint state
// (s1, s2), symbol c leads to (a.Advance(s1, c), b.Advance(s2, c)) with
// weight combine(w1, w2). The joint initial state is (a.Start(), b.Start()).
//
// Both automata must share the same alphabet bounds; otherwise
// ErrAlphabetMismatch is returned. The raw product has |a|*|b| states, most
// of which are typically unreachable from the joint start, so the result is
// always pruned (and therefore renumbered to 1..N) before it is returned.
//
// Pair labels are flattened to i*|b| + j internally; they are never
// observable in the pruned result.
func Intersect[W1, W2, W3 any](a *DFA[W1], b *DFA[W2], combine func(W1, W2) W3) (*DFA[W3], error) {
	if a.symbols != b.symbols {
		return nil, fmt.Errorf("dfa: cannot intersect automaton over [%d, %d] with automaton over [%d, %d]: %w",
			a.symbols.Min, a.symbols.Max, b.symbols.Min, b.symbols.Max, ErrAlphabetMismatch)
	}

	am := a.states.Len()
	bn := b.states.Len()
	table := make([]Transition[W3], conv.MulInt(conv.MulInt(am, bn), a.stride))
	i := 0
	for ai := 0; ai < am; ai++ {
		abase := ai * a.stride
		for bi := 0; bi < bn; bi++ {
			bbase := bi * b.stride
			for c := 0; c < a.stride; c++ {
				ta := a.table[abase+c]
				tb := b.table[bbase+c]
				next := (ta.Next-a.states.Min)*bn + (tb.Next - b.states.Min)
				table[i] = Transition[W3]{Next: next, Weight: combine(ta.Weight, tb.Weight)}
				i++
			}
		}
	}
	raw := &DFA[W3]{
		states:  Bounds{Min: 0, Max: am*bn - 1},
		symbols: a.symbols,
		stride:  a.stride,
		table:   table,
	}
	return Prune(raw), nil
}
