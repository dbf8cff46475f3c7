package countgram

import (
	"errors"
	"fmt"

	"github.com/coregx/wdfa/dfa"
	"github.com/coregx/wdfa/semiring"
)

// Compiler errors.
var (
	// ErrNoClasses is returned when the pattern has no classes.
	ErrNoClasses = errors.New("pattern has no classes")

	// ErrClassAlphabet is returned when a class was built over an alphabet
	// different from the pattern's alphabet.
	ErrClassAlphabet = errors.New("class alphabet differs from pattern alphabet")

	// ErrTooManyClasses is returned when the pre-pruning state space
	// exceeds the configured cap (or the bitmask encoding limit).
	ErrTooManyClasses = errors.New("pattern state space exceeds limit")
)

// bitmask states carry one bit per pattern position 1..n-1; keep the mask
// well inside an int64.
const maxProgressBits = 62

// Build compiles an n-class pattern into a pruned counting automaton using
// the default configuration. See BuildWithConfig.
func Build[W any](r semiring.Semiring[W], alphabet dfa.Bounds, classes []Class) (*dfa.DFA[W], error) {
	return BuildWithConfig(r, alphabet, classes, DefaultConfig())
}

// BuildWithConfig compiles an ordered list of n classes into a weighted
// automaton over the given alphabet that counts class n-gram occurrences:
// every transition completing a full n-class window carries weight One, all
// others carry Zero, so monoid-summing the transition weights of an input
// (for example with semiring.IntSum over a Counting-weighted automaton)
// yields the number of matching windows, overlaps included.
//
// States are progress bitmasks of n-1 bits. Bit b (1-indexed) set means
// "classes 1..b matched, ending at the previous symbol". On consuming c in
// state s, bit b of the successor is set iff (b == 1 or bit b-1 is set in s)
// and c belongs to class b; the transition is match-completing iff bit n-1
// is set in s and c belongs to class n. With n = 1 there are no progress
// bits: the single state loops, and every symbol of the one class completes
// a match.
//
// The raw 2^(n-1)-state table is pruned before it is returned, so the
// result's states are the reachable progress masks renumbered 1..N.
func BuildWithConfig[W any](r semiring.Semiring[W], alphabet dfa.Bounds, classes []Class, config Config) (*dfa.DFA[W], error) {
	n := len(classes)
	if n == 0 {
		return nil, fmt.Errorf("countgram: %w", ErrNoClasses)
	}
	for i, c := range classes {
		if c.alphabet != alphabet {
			return nil, fmt.Errorf("countgram: class %d built over [%d, %d], pattern over [%d, %d]: %w",
				i+1, c.alphabet.Min, c.alphabet.Max, alphabet.Min, alphabet.Max, ErrClassAlphabet)
		}
	}
	progressBits := n - 1
	if progressBits > maxProgressBits {
		return nil, fmt.Errorf("countgram: %d classes need 2^%d states: %w", n, progressBits, ErrTooManyClasses)
	}
	numStates := 1 << progressBits
	if config.MaxStates > 0 && numStates > config.MaxStates {
		return nil, fmt.Errorf("countgram: %d classes need %d states, cap is %d: %w",
			n, numStates, config.MaxStates, ErrTooManyClasses)
	}

	zero := r.Zero()
	one := r.One()
	final := classes[n-1]
	raw := dfa.New(dfa.Bounds{Min: 0, Max: numStates - 1}, alphabet, func(s, sym int) (int, W) {
		mask := 0
		for b := 1; b <= progressBits; b++ {
			if (b == 1 || s&(1<<(b-2)) != 0) && classes[b-1].Contains(sym) {
				mask |= 1 << (b - 1)
			}
		}
		completes := final.Contains(sym)
		if progressBits > 0 {
			completes = completes && s&(1<<(progressBits-1)) != 0
		}
		if completes {
			return mask, one
		}
		return mask, zero
	})
	return dfa.Prune(raw), nil
}
