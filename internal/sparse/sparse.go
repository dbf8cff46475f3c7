// Package sparse provides a sparse set over a bounded integer universe.
//
// A sparse set supports O(1) insertion and membership testing without
// initializing the full universe, which makes it a good fit for tracking
// visited states during reachability traversal: the universe (the state
// count) is known up front and often much larger than the reachable subset.
package sparse

// Set is a set of ints in the range [0, capacity).
// It keeps a sparse array (membership) and a dense array (the elements in
// insertion order). The sparse array maps each value to its dense index.
type Set struct {
	sparse []int // maps value -> index in dense
	dense  []int // the elements, in insertion order
}

// NewSet creates an empty set over the universe [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]int, capacity),
		dense:  make([]int, 0, capacity),
	}
}

// Insert adds value to the set. Returns false if it was already present.
func (s *Set) Insert(value int) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = len(s.dense)
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value int) bool {
	if value < 0 || value >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return idx < len(s.dense) && s.dense[idx] == value
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Clear removes all elements in O(1) time.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []int {
	return s.dense
}
