package semiring

import "math"

// IntSum is the monoid of ints under addition.
//
// This is the accumulator for occurrence counting: a counting automaton
// emits weight 1 on every match-completing transition and 0 elsewhere, so
// monoid transduction under IntSum yields the total count.
type IntSum struct{}

// Identity returns 0.
func (IntSum) Identity() int { return 0 }

// Combine returns a + b.
func (IntSum) Combine(a, b int) int { return a + b }

// Counting is the semiring of ints under (+, 0) and (*, 1).
type Counting struct{}

// Zero returns 0.
func (Counting) Zero() int { return 0 }

// One returns 1.
func (Counting) One() int { return 1 }

// Add returns a + b.
func (Counting) Add(a, b int) int { return a + b }

// Mul returns a * b.
func (Counting) Mul(a, b int) int { return a * b }

// Probability is the semiring of float64 under (+, 0) and (*, 1).
//
// Probabilities along a path multiply; values of independent paths add.
// A deterministic automaton follows exactly one path per input, so callers
// aggregating over several inputs add the per-input results themselves.
type Probability struct{}

// Zero returns 0.
func (Probability) Zero() float64 { return 0 }

// One returns 1.
func (Probability) One() float64 { return 1 }

// Add returns a + b.
func (Probability) Add(a, b float64) float64 { return a + b }

// Mul returns a * b.
func (Probability) Mul(a, b float64) float64 { return a * b }

// Tropical is the min-plus semiring of float64: (min, +Inf) and (+, 0).
// Useful for cost and log-domain accumulation, where path costs add and
// alternatives take the minimum.
type Tropical struct{}

// Zero returns +Inf.
func (Tropical) Zero() float64 { return math.Inf(1) }

// One returns 0.
func (Tropical) One() float64 { return 0 }

// Add returns min(a, b).
func (Tropical) Add(a, b float64) float64 { return math.Min(a, b) }

// Mul returns a + b.
func (Tropical) Mul(a, b float64) float64 { return a + b }

// Concat is the monoid of slices under concatenation, with nil as identity.
// Combine copies; it never aliases either argument's backing array, so
// accumulated results are safe to retain.
type Concat[T any] struct{}

// Identity returns nil.
func (Concat[T]) Identity() []T { return nil }

// Combine returns a fresh slice holding a followed by b.
func (Concat[T]) Combine(a, b []T) []T {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
