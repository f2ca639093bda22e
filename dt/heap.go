package dt

import (
	"cmp"
	"iter"
)

// Heap is a min-ordered container built on a List: Push keeps the
// items sorted by CF, and Pop removes the smallest. Items that
// compare equal keep their insertion order, so materializing a view
// into a Heap is a stable sort.
//
// Push and Pop panic with ErrUninitializedContainer when CF is nil.
type Heap[T any] struct {
	CF   func(T, T) int
	data List[T]
}

// MakeHeap returns an empty heap ordered by cmp.Compare.
func MakeHeap[T cmp.Ordered]() *Heap[T] { return &Heap[T]{CF: cmp.Compare[T]} }

func (h *Heap[T]) list() *List[T] {
	if h.CF == nil {
		panic(ErrUninitializedContainer)
	}
	h.data.lazyInit()
	return &h.data
}

// Push adds an item to the heap. Input that is already in order is
// inserted in constant time.
func (h *Heap[T]) Push(t T) {
	list := h.list()

	at := list.root.prev
	for at != &list.root && h.CF(t, at.item) < 0 {
		at = at.prev
	}
	list.insertAfter(at, t)
}

// Len reports the size of the heap.
func (h *Heap[T]) Len() int { return h.data.Len() }

// Pop removes the smallest item and returns it, with an Ok value,
// which is false when the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	if e := h.list().PopFront(); e != nil {
		return e.item, true
	}
	var zero T
	return zero, false
}

// Iterator provides an iterator to the items in the heap, smallest
// first.
func (h *Heap[T]) Iterator() iter.Seq[T] { return h.data.Iterator() }
