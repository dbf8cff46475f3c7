// Package wdfa provides a weighted deterministic finite automaton engine
// for counting constraint patterns in symbol strings.
//
// The engine is a generic substrate: automata carry an opaque weight on
// every transition, subpackage dfa provides the representation together
// with pruning, product construction, and transduction, subpackage
// semiring provides the weight algebra, and subpackage countgram compiles
// class n-gram patterns into counting automata.
//
// This package is the convenience facade for the common case, counting
// occurrences of a class n-gram:
//
//	alphabet := dfa.Bounds{Min: 0, Max: 2} // symbols a=0, b=1, c=2
//	p, err := wdfa.CompilePattern(alphabet, []countgram.Class{
//	    countgram.NewClass(alphabet, 0),
//	    countgram.NewClass(alphabet, 1),
//	    countgram.NewClass(alphabet, 2),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n := p.Count([]int{0, 1, 2, 0, 1, 2}) // 2
//
// Compilation picks an execution strategy automatically: a pattern whose
// classes are all singletons over a byte-range alphabet is a literal
// string, and counting its occurrences is repeated leftmost search over an
// Aho-Corasick automaton rather than a table-driven transduction. Both
// strategies return identical counts.
//
// Compiled patterns are immutable and safe for concurrent use. Composite
// constraints (count pattern A and pattern B simultaneously) are built by
// compiling each pattern separately and combining the automata with
// dfa.Intersect.
package wdfa

import (
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/wdfa/countgram"
	"github.com/coregx/wdfa/dfa"
	"github.com/coregx/wdfa/semiring"
)

// Strategy identifies the execution strategy selected for a pattern.
type Strategy int

const (
	// UseDense runs the bitmask counting automaton by transduction.
	// Selected for any pattern; the automaton is always built.
	UseDense Strategy = iota

	// UseAhoCorasick counts by repeated leftmost literal search.
	// Selected when every class is a singleton and the alphabet fits in a
	// byte, so the pattern is a literal string of symbols.
	UseAhoCorasick
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case UseDense:
		return "dense"
	case UseAhoCorasick:
		return "aho-corasick"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Pattern is a compiled class n-gram counter.
type Pattern struct {
	strategy Strategy
	alphabet dfa.Bounds
	auto     *dfa.DFA[int]
	ac       *ahocorasick.Automaton
}

// CompilePattern compiles a class n-gram over the given alphabet with the
// default countgram configuration.
func CompilePattern(alphabet dfa.Bounds, classes []countgram.Class) (*Pattern, error) {
	return CompilePatternWithConfig(alphabet, classes, countgram.DefaultConfig())
}

// CompilePatternWithConfig compiles a class n-gram and selects an execution
// strategy. The pruned dense automaton is built for every pattern, so
// Automaton is always available for further composition, even when counting
// itself takes the literal fast path.
func CompilePatternWithConfig(alphabet dfa.Bounds, classes []countgram.Class, config countgram.Config) (*Pattern, error) {
	auto, err := countgram.BuildWithConfig(semiring.Counting{}, alphabet, classes, config)
	if err != nil {
		return nil, err
	}
	p := &Pattern{strategy: UseDense, alphabet: alphabet, auto: auto}

	lit, ok := literalPattern(alphabet, classes)
	if !ok {
		return p, nil
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(lit)
	ac, err := builder.Build()
	if err != nil {
		// Fall back to the dense automaton.
		return p, nil
	}
	p.strategy = UseAhoCorasick
	p.ac = ac
	return p, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
// Intended for patterns known valid at program start.
func MustCompilePattern(alphabet dfa.Bounds, classes []countgram.Class) *Pattern {
	p, err := CompilePattern(alphabet, classes)
	if err != nil {
		panic(fmt.Sprintf("wdfa: compile failed: %v", err))
	}
	return p
}

// Count is a one-shot convenience: compile the pattern and count its
// occurrences in input. Compile once and reuse the Pattern when counting
// over many inputs.
func Count(alphabet dfa.Bounds, classes []countgram.Class, input []int) (int, error) {
	p, err := CompilePattern(alphabet, classes)
	if err != nil {
		return 0, err
	}
	return p.Count(input), nil
}

// Count returns the number of windows of input matching the pattern,
// overlaps included. Panics if input contains a symbol outside the
// alphabet bounds.
func (p *Pattern) Count(input []int) int {
	if p.strategy == UseAhoCorasick {
		return p.countLiteral(input)
	}
	return dfa.Transduce(semiring.IntSum{}, p.auto, input)
}

// countLiteral counts occurrences of the literal pattern by repeated
// leftmost search, restarting one past each match start so overlapping
// occurrences are all seen.
func (p *Pattern) countLiteral(input []int) int {
	haystack := make([]byte, len(input))
	for i, sym := range input {
		if !p.alphabet.Contains(sym) {
			panic(fmt.Sprintf("wdfa: symbol %d outside alphabet bounds [%d, %d]", sym, p.alphabet.Min, p.alphabet.Max))
		}
		haystack[i] = byte(sym)
	}
	count := 0
	for at := 0; at < len(haystack); {
		m := p.ac.Find(haystack, at)
		if m == nil {
			break
		}
		count++
		at = m.Start + 1
	}
	return count
}

// Strategy returns the execution strategy selected at compile time.
func (p *Pattern) Strategy() Strategy { return p.strategy }

// Automaton returns the pruned counting automaton. Transition weights are
// 1 on match-completing transitions and 0 elsewhere; compose further with
// dfa.Intersect, or reweight with dfa.MapWeights.
func (p *Pattern) Automaton() *dfa.DFA[int] { return p.auto }

// literalPattern returns the pattern as a byte literal when every class is
// a singleton and the alphabet fits in a byte.
func literalPattern(alphabet dfa.Bounds, classes []countgram.Class) ([]byte, bool) {
	if alphabet.Min < 0 || alphabet.Max > 0xFF {
		return nil, false
	}
	lit := make([]byte, len(classes))
	for i, c := range classes {
		sym, ok := c.Singleton()
		if !ok {
			return nil, false
		}
		lit[i] = byte(sym)
	}
	return lit, true
}
