package dt

import (
	"iter"
	"slices"

	"github.com/tychoish/lazy/ers"
)

// Slice is just a local wrapper around a slice, which implements all
// of the container capabilities: items can be pushed, capacity can be
// reserved, and the slice can be resized and written by index.
type Slice[T any] []T

// NewSlice produces a slice object as a convenience constructor to
// avoid needing to specify types.
func NewSlice[T any](in []T) Slice[T] { return in }

// Variadic constructs a slice of type T from a sequence of variadic
// elements.
func Variadic[T any](in ...T) Slice[T] { return in }

// SliceWithCapacity makes an empty slice with the capacity
// preallocated.
func SliceWithCapacity[T any](n int) Slice[T] { return make([]T, 0, n) }

// MakeSlice returns a pointer to a new, empty slice. Use it as the
// constructor for materialization.
func MakeSlice[T any]() *Slice[T] { return &Slice[T]{} }

// Push adds a single item to the end of the slice.
func (s *Slice[T]) Push(in T) { *s = append(*s, in) }

// PushMany adds all of the items to the end of the slice.
func (s *Slice[T]) PushMany(in ...T) { *s = append(*s, in...) }

// Reserve grows the capacity of the slice so that n more items can
// be pushed without reallocating. Negative values are ignored.
func (s *Slice[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	*s = slices.Grow(*s, n)
}

// Resize sets the length of the slice to n: extending with zero
// values, or truncating. Panics if n is negative.
func (s *Slice[T]) Resize(n int) {
	if n < 0 {
		panic(ers.Wrapf(ers.ErrInvalidArgument, "cannot resize slice to %d", n))
	}
	if n <= len(*s) {
		*s = (*s)[:n]
		return
	}
	*s = append(slices.Grow(*s, n-len(*s)), make([]T, n-len(*s))...)
}

// Set replaces the item at the index. Panics if the index is out of
// range, as slice access does.
func (s Slice[T]) Set(idx int, value T) { s[idx] = value }

// Index returns the item at the specified index.
//
// If the provided index is not within the bounds of the slice the
// operation panics.
func (s Slice[T]) Index(index int) T { return s[index] }

// Len returns the length of the slice.
func (s Slice[T]) Len() int { return len(s) }

// Cap returns the capacity of the slice.
func (s Slice[T]) Cap() int { return cap(s) }

// IsEmpty returns true when there are no items in the slice.
func (s Slice[T]) IsEmpty() bool { return len(s) == 0 }

// Last returns the index of the last element in the slice. Empty
// slices have `-1` last items.
func (s Slice[T]) Last() int { return len(s) - 1 }

// Copy performs a shallow copy of the Slice.
func (s Slice[T]) Copy() Slice[T] { return slices.Clone(s) }

// Iterator returns the contents of a slice as a standard Go iterator.
func (s Slice[T]) Iterator() iter.Seq[T] { return slices.Values(s) }
