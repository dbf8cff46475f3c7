// Package dfa implements a generic weighted deterministic finite automaton
// (WDFA): a total, deterministic transition function over dense state and
// alphabet domains, with an opaque weight on every transition.
//
// The transition table is a flat array indexed
//
//	table[(state-stateMin)*stride + (symbol-symbolMin)]
//
// where stride is the alphabet size. Both domains are inclusive integer
// intervals (Bounds), which is what allows array-backed storage instead of
// a sparse map: every (state, symbol) pair in bounds has exactly one entry.
//
// Automata are immutable once constructed. Every transformation (MapWeights,
// Prune, Intersect) is a pure function producing a new automaton that owns
// its table outright; a constructed automaton is safe to share across
// goroutines for read-only transduction.
//
// There is no accepting-state set: acceptance and counting semantics live
// entirely in the transition weights. Out-of-bounds queries are programming
// errors and panic; see the package's error doc for the one recoverable
// error (alphabet mismatch during Intersect).
package dfa

import (
	"fmt"

	"github.com/coregx/wdfa/internal/conv"
)

// Bounds is an inclusive integer interval [Min, Max].
// It describes a state-label domain or an alphabet domain.
type Bounds struct {
	Min, Max int
}

// Len returns the number of values in the interval.
func (b Bounds) Len() int { return b.Max - b.Min + 1 }

// Contains reports whether v lies within the interval.
func (b Bounds) Contains(v int) bool { return v >= b.Min && v <= b.Max }

// Transition is a single table entry: the successor state and the weight
// carried by the edge.
type Transition[W any] struct {
	Next   int
	Weight W
}

// DFA is a weighted deterministic finite automaton over weight type W.
//
// The initial state is always the minimum state label. A canonical
// (post-pruning) automaton uses the contiguous label range 1..N, but any
// inclusive integer interval is accepted at construction.
type DFA[W any] struct {
	states  Bounds
	symbols Bounds
	stride  int // == symbols.Len()
	table   []Transition[W]
}

// New builds an automaton by dense comprehension: delta is evaluated once
// for every (state, symbol) pair in bounds, in row-major order.
//
// Panics if either bounds interval is empty, or if delta returns a successor
// outside the state bounds. Both indicate caller bugs, not input errors.
func New[W any](states, symbols Bounds, delta func(state, sym int) (int, W)) *DFA[W] {
	if states.Len() <= 0 {
		panic(fmt.Sprintf("dfa: empty state bounds [%d, %d]", states.Min, states.Max))
	}
	if symbols.Len() <= 0 {
		panic(fmt.Sprintf("dfa: empty alphabet bounds [%d, %d]", symbols.Min, symbols.Max))
	}
	stride := symbols.Len()
	table := make([]Transition[W], conv.MulInt(states.Len(), stride))
	i := 0
	for s := states.Min; s <= states.Max; s++ {
		for c := symbols.Min; c <= symbols.Max; c++ {
			next, w := delta(s, c)
			if !states.Contains(next) {
				panic(fmt.Sprintf("dfa: delta(%d, %d) returned successor %d outside state bounds [%d, %d]",
					s, c, next, states.Min, states.Max))
			}
			table[i] = Transition[W]{Next: next, Weight: w}
			i++
		}
	}
	return &DFA[W]{states: states, symbols: symbols, stride: stride, table: table}
}

// StateBounds returns the inclusive state-label interval.
func (d *DFA[W]) StateBounds() Bounds { return d.states }

// AlphabetBounds returns the inclusive alphabet interval.
func (d *DFA[W]) AlphabetBounds() Bounds { return d.symbols }

// Start returns the initial state: the minimum state label.
func (d *DFA[W]) Start() int { return d.states.Min }

// NumStates returns the number of states.
func (d *DFA[W]) NumStates() int { return d.states.Len() }

// Transition returns the (successor, weight) entry for (state, sym) in O(1).
// Panics if either argument is out of bounds.
func (d *DFA[W]) Transition(state, sym int) Transition[W] {
	return d.table[d.index(state, sym)]
}

// Advance returns just the successor state for (state, sym).
// Panics if either argument is out of bounds.
func (d *DFA[W]) Advance(state, sym int) int {
	return d.table[d.index(state, sym)].Next
}

// index maps a (state, symbol) pair to its flat table offset,
// enforcing the in-bounds precondition.
func (d *DFA[W]) index(state, sym int) int {
	if !d.states.Contains(state) {
		panic(fmt.Sprintf("dfa: state %d outside bounds [%d, %d]", state, d.states.Min, d.states.Max))
	}
	if !d.symbols.Contains(sym) {
		panic(fmt.Sprintf("dfa: symbol %d outside alphabet bounds [%d, %d]", sym, d.symbols.Min, d.symbols.Max))
	}
	return (state-d.states.Min)*d.stride + (sym - d.symbols.Min)
}

// MapWeights returns a new automaton with every transition weight replaced
// by f(weight), preserving the topology exactly. It is a top-level function
// rather than a method because the result's weight type may differ.
func MapWeights[W1, W2 any](d *DFA[W1], f func(W1) W2) *DFA[W2] {
	table := make([]Transition[W2], len(d.table))
	for i, t := range d.table {
		table[i] = Transition[W2]{Next: t.Next, Weight: f(t.Weight)}
	}
	return &DFA[W2]{states: d.states, symbols: d.symbols, stride: d.stride, table: table}
}
