// Package countgram compiles class n-gram patterns into counting automata.
//
// A class n-gram is an ordered sequence of alphabet subsets ("classes").
// The compiled automaton counts, over any input string, the windows of n
// consecutive symbols whose i-th symbol belongs to class i. Matches may
// overlap; every completing window contributes one count.
//
// The construction is direct: a state is a bitmask recording which prefixes
// of the pattern are live at the current position, so the bitmask itself is
// the subset-construction state and no NFA determinization is needed. The
// raw 2^(n-1)-state table is always pruned, since fixing the per-position
// classes leaves most bitmasks unreachable.
package countgram

import (
	"fmt"
	"math/bits"

	"github.com/coregx/wdfa/dfa"
)

// Class is a subset of an alphabet's symbols, backed by a bitset.
// The zero value is not usable; build classes with NewClass.
type Class struct {
	alphabet dfa.Bounds
	words    []uint64
}

// NewClass builds a class over the given alphabet containing exactly the
// listed symbols. Panics if the alphabet is empty or a symbol lies outside
// it (a caller bug, not an input error).
func NewClass(alphabet dfa.Bounds, symbols ...int) Class {
	if alphabet.Len() <= 0 {
		panic(fmt.Sprintf("countgram: empty alphabet bounds [%d, %d]", alphabet.Min, alphabet.Max))
	}
	c := Class{
		alphabet: alphabet,
		words:    make([]uint64, (alphabet.Len()+63)/64),
	}
	for _, sym := range symbols {
		if !alphabet.Contains(sym) {
			panic(fmt.Sprintf("countgram: symbol %d outside alphabet bounds [%d, %d]", sym, alphabet.Min, alphabet.Max))
		}
		bit := sym - alphabet.Min
		c.words[bit/64] |= 1 << (bit % 64)
	}
	return c
}

// Alphabet returns the alphabet bounds the class was built over.
func (c Class) Alphabet() dfa.Bounds { return c.alphabet }

// Contains reports whether sym belongs to the class.
// Symbols outside the alphabet are never members.
func (c Class) Contains(sym int) bool {
	if !c.alphabet.Contains(sym) {
		return false
	}
	bit := sym - c.alphabet.Min
	return c.words[bit/64]&(1<<(bit%64)) != 0
}

// Len returns the number of symbols in the class.
func (c Class) Len() int {
	n := 0
	for _, w := range c.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Singleton returns the class's sole symbol if it contains exactly one.
func (c Class) Singleton() (int, bool) {
	if c.Len() != 1 {
		return 0, false
	}
	for i, w := range c.words {
		if w != 0 {
			return c.alphabet.Min + i*64 + bits.TrailingZeros64(w), true
		}
	}
	return 0, false
}
