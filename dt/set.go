package dt

import (
	"iter"
	"maps"
)

// Set is an unordered collection of unique items. It supports
// pushing and reserving; adding an item that is already present is a
// no-op.
type Set[T comparable] struct {
	hash Map[T, struct{}]
}

// MakeSet returns a new empty set. Use it as the constructor for
// materialization.
func MakeSet[T comparable]() *Set[T] { return &Set[T]{} }

// Push adds the item to the set.
func (s *Set[T]) Push(in T) {
	if s.hash == nil {
		s.hash = Map[T, struct{}]{}
	}
	s.hash[in] = struct{}{}
}

// Reserve preallocates space for n items. It only has an effect on
// empty sets, as Go maps cannot grow in place.
func (s *Set[T]) Reserve(n int) {
	if len(s.hash) == 0 && n > 0 {
		s.hash = make(Map[T, struct{}], n)
	}
}

// Check returns true if the item is in the set.
func (s *Set[T]) Check(in T) bool { return s.hash.Check(in) }

// Delete removes the item from the set.
func (s *Set[T]) Delete(in T) { delete(s.hash, in) }

// Len returns the number of unique items in the set.
func (s *Set[T]) Len() int { return len(s.hash) }

// Iterator returns the items of the set in an unspecified order.
func (s *Set[T]) Iterator() iter.Seq[T] { return maps.Keys(s.hash) }
