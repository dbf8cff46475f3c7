package dfa

import "github.com/coregx/wdfa/semiring"

// Transduce feeds input through the automaton from its initial state and
// combines the encountered transition weights with the monoid, in sequence
// order. An empty input yields the monoid identity.
//
// Transduce is a pure function of (automaton, input); it never mutates the
// automaton and is safe to call concurrently on a shared automaton.
// Panics if input contains a symbol outside the alphabet bounds.
func Transduce[W any](m semiring.Monoid[W], d *DFA[W], input []int) W {
	acc := m.Identity()
	state := d.Start()
	for _, c := range input {
		t := d.Transition(state, c)
		acc = m.Combine(acc, t.Weight)
		state = t.Next
	}
	return acc
}

// TransduceRing feeds input through the automaton, multiplying the
// encountered weights with the semiring's Mul starting from One, then folds
// the single path value into the additive identity with one Add.
//
// The automaton is deterministic, so one call follows exactly one path;
// there is no summation over alternative paths. Callers aggregating several
// independent inputs add the per-call results themselves. An empty input
// yields Add(Zero, One).
func TransduceRing[W any](r semiring.Semiring[W], d *DFA[W], input []int) W {
	path := r.One()
	state := d.Start()
	for _, c := range input {
		t := d.Transition(state, c)
		path = r.Mul(path, t.Weight)
		state = t.Next
	}
	return r.Add(r.Zero(), path)
}
