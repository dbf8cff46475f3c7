// Package semiring defines the weight algebra consumed by the WDFA engine.
//
// Transition weights are opaque to the automaton; all the engine ever does
// with them is combine them through one of two contracts:
//
//   - Monoid: an associative combine with an identity, used by plain
//     transduction (weights accumulate by concatenation/append semantics).
//   - Semiring: two monoids (add, mul) related by distributivity, used by
//     semiring transduction (weights multiply along a path, path values add).
//
// Both contracts are plain interfaces so the same transduction code works
// uniformly over counts, probabilities, costs, or structured accumulators.
// All instances in this package are zero-size value types; pass them by value.
package semiring

// Monoid is an associative combining operation with an identity element.
//
// Implementations must satisfy, for all a, b, c:
//
//	Combine(Identity(), a) == a
//	Combine(a, Identity()) == a
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
type Monoid[W any] interface {
	// Identity returns the neutral element of Combine.
	Identity() W

	// Combine combines two weights. Must be associative.
	Combine(a, b W) W
}

// Semiring is a pair of monoids over the same weight type: an additive one
// (Add, Zero) and a multiplicative one (Mul, One), with Mul distributing
// over Add and Zero annihilating Mul.
type Semiring[W any] interface {
	// Zero returns the additive identity.
	Zero() W

	// One returns the multiplicative identity.
	One() W

	// Add combines two weights additively. Must be associative.
	Add(a, b W) W

	// Mul combines two weights multiplicatively. Must be associative.
	Mul(a, b W) W
}
