package dt

import (
	"iter"
	"maps"
)

// Map is just a generic type wrapper around a map. The hash map
// materialization produces these.
//
// All normal map operations are still accessible, these methods
// exist to provide accessible function objects for use in contexts
// where that may be useful and to improve the readability of some
// call sites, where default map access may be awkward.
type Map[K comparable, V any] map[K]V

// NewMap provides a constructor to return a dt.Map without specifying types.
func NewMap[K comparable, V any](in map[K]V) Map[K, V] { return in }

// Check returns true if the value K is in the map.
func (m Map[K, V]) Check(key K) bool { _, ok := m[key]; return ok }

// Get returns the value from the map, or the zero value when the key
// is absent.
func (m Map[K, V]) Get(key K) V { return m[key] }

// Load returns the value in the map for the key, and an "ok" value
// which is true if that item is present in the map.
func (m Map[K, V]) Load(key K) (V, bool) { v, ok := m[key]; return v, ok }

// Store adds a key value pair directly to the map.
func (m Map[K, V]) Store(k K, v V) { m[k] = v }

// Delete removes a key from the map.
func (m Map[K, V]) Delete(k K) { delete(m, k) }

// Len returns the length. It is equivalent to len(Map), but is
// provided for consistency.
func (m Map[K, V]) Len() int { return len(m) }

// Iterator returns a standard Go iterator interface to the key-value pairs of the map.
func (m Map[K, V]) Iterator() iter.Seq2[K, V] { return maps.All(m) }
