// Package conv provides checked arithmetic for transition-table sizing.
//
// Table sizes are products of state and alphabet counts; a silent overflow
// would allocate a wrong-sized table. These helpers panic on overflow since
// that indicates a programming error (an automaton too large for the host
// int), not a recoverable condition.
package conv

import "math"

// MulInt multiplies two non-negative ints.
// Panics if either operand is negative or the product overflows int.
func MulInt(a, b int) int {
	if a < 0 || b < 0 {
		panic("integer overflow: negative operand in table size computation")
	}
	if a != 0 && b > math.MaxInt/a {
		panic("integer overflow: transition table size exceeds int range")
	}
	return a * b
}
