package dfa

import "errors"

// ErrAlphabetMismatch is returned by Intersect when the two automata are
// built over different alphabet bounds. The product of automata with
// unequal alphabets is undefined; it is never truncated or padded.
var ErrAlphabetMismatch = errors.New("alphabet bounds differ")
