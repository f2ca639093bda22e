package dt

import (
	"iter"

	"github.com/tychoish/lazy/ers"
)

const defaultRingSize int = 1024

// Ring is a fixed capacity buffer that keeps the most recent items:
// once it is full, every Push overwrites the oldest item. Materializing
// a view into a Ring keeps the tail of the view. The zero value has a
// capacity of 1024.
//
// Operations on the Ring are NOT safe for concurrent use from
// multiple go routines.
type Ring[T any] struct {
	buf   []T
	pos   int
	count int
	total uint64
}

// MakeRing returns a ring with capacity for size items. Panics if
// size is less than one.
func MakeRing[T any](size int) *Ring[T] {
	if size < 1 {
		panic(ers.Wrapf(ers.ErrInvalidArgument, "ring of size %d", size))
	}
	return &Ring[T]{buf: make([]T, size)}
}

func (r *Ring[T]) init() {
	if r.buf == nil {
		r.buf = make([]T, defaultRingSize)
	}
}

func (r *Ring[T]) Cap() int      { r.init(); return len(r.buf) }
func (r *Ring[T]) Len() int      { return r.count }
func (r *Ring[T]) Total() uint64 { return r.total }

func (r *Ring[T]) oldest() int { return (r.pos - r.count + len(r.buf)) % len(r.buf) }

// Push adds an item, overwriting the oldest item when the ring is
// full.
func (r *Ring[T]) Push(val T) {
	r.init()

	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)

	r.total++
	if r.count < len(r.buf) {
		r.count++
	}
}

// Pop removes and returns the oldest item.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}

	idx := r.oldest()
	val := r.buf[idx]
	r.buf[idx] = zero
	r.count--
	return val, true
}

// FIFO iterates from the oldest item to the newest.
func (r *Ring[T]) FIFO() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.count; i++ {
			if !yield(r.buf[(r.oldest()+i)%len(r.buf)]) {
				return
			}
		}
	}
}

// LIFO iterates from the newest item to the oldest.
func (r *Ring[T]) LIFO() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 1; i <= r.count; i++ {
			if !yield(r.buf[(r.pos-i+len(r.buf))%len(r.buf)]) {
				return
			}
		}
	}
}
