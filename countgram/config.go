package countgram

// Config tunes the counting-automaton compiler.
type Config struct {
	// MaxStates caps the pre-pruning state count, which is 2^(n-1) for an
	// n-class pattern. Build fails with ErrTooManyClasses when a pattern
	// exceeds the cap instead of allocating the full table.
	//
	// Default: 1 << 20 states (a 21-class pattern over any alphabet).
	// Patterns in practice are short; the cap exists so a pathological
	// class list fails fast rather than exhausting memory.
	//
	// A value <= 0 disables the cap (the 2^62 encoding limit still applies).
	MaxStates int
}

// DefaultConfig returns the default compiler configuration.
func DefaultConfig() Config {
	return Config{MaxStates: 1 << 20}
}
