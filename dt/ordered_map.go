package dt

import (
	"cmp"
	"iter"
	"slices"
)

// OrderedMap is a key-value mapping that keeps its keys sorted
// according to a comparison function. Storing an existing key
// replaces its value.
//
// Lookups are O(log n) and insertions are O(n); the map is intended
// as a materialization target, not as a general purpose index.
type OrderedMap[K any, V any] struct {
	keys   []K
	values []V
	cmp    func(a, b K) int
}

// NewOrderedMap constructs a map ordered with cmp.Compare.
func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return NewOrderedMapFunc[K, V](cmp.Compare[K])
}

// NewOrderedMapFunc constructs a map with a custom ordering. The
// comparison must return a negative number when a sorts before b, a
// positive number when it sorts after, and zero when they are the
// same key.
func NewOrderedMapFunc[K any, V any](cf func(a, b K) int) *OrderedMap[K, V] {
	if cf == nil {
		panic(ErrUninitializedContainer)
	}
	return &OrderedMap[K, V]{cmp: cf}
}

func (m *OrderedMap[K, V]) search(key K) (int, bool) {
	if m.cmp == nil {
		panic(ErrUninitializedContainer)
	}
	return slices.BinarySearchFunc(m.keys, key, m.cmp)
}

// Store sets the value for the key.
func (m *OrderedMap[K, V]) Store(key K, value V) {
	idx, ok := m.search(key)
	if ok {
		m.values[idx] = value
		return
	}
	m.keys = slices.Insert(m.keys, idx, key)
	m.values = slices.Insert(m.values, idx, value)
}

// Load returns the value for the key and true, or the zero value and
// false when the key is absent.
func (m *OrderedMap[K, V]) Load(key K) (V, bool) {
	idx, ok := m.search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[idx], true
}

// Check returns true if the key is in the map.
func (m *OrderedMap[K, V]) Check(key K) bool { _, ok := m.search(key); return ok }

// Delete removes the key, if present.
func (m *OrderedMap[K, V]) Delete(key K) {
	if idx, ok := m.search(key); ok {
		m.keys = slices.Delete(m.keys, idx, idx+1)
		m.values = slices.Delete(m.values, idx, idx+1)
	}
}

// Reserve preallocates space for n more entries.
func (m *OrderedMap[K, V]) Reserve(n int) {
	if n <= 0 {
		return
	}
	m.keys = slices.Grow(m.keys, n)
	m.values = slices.Grow(m.values, n)
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns a copy of the keys, in order.
func (m *OrderedMap[K, V]) Keys() Slice[K] { return slices.Clone(m.keys) }

// Values returns a copy of the values, in key order.
func (m *OrderedMap[K, V]) Values() Slice[V] { return slices.Clone(m.values) }

// Iterator returns the entries in key order.
func (m *OrderedMap[K, V]) Iterator() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for idx := range m.keys {
			if !yield(m.keys[idx], m.values[idx]) {
				return
			}
		}
	}
}
