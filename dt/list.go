package dt

import (
	"fmt"
	"iter"
)

// List provides a doubly linked list. It supports pushing but not
// reserving or resizing, so parallel materialization rejects it.
// Callers are responsible for their own concurrency control.
type List[T any] struct {
	root   Element[T]
	length int
}

// MakeList returns a new empty list. Use it as the constructor for
// materialization.
func MakeList[T any]() *List[T] { return &List[T]{} }

// Element is the underlying component of a list. Use the Next and
// Previous methods to walk the list; both return nil at the ends.
type Element[T any] struct {
	next *Element[T]
	prev *Element[T]
	list *List[T]
	item T
}

// Value accesses the element's value.
func (e *Element[T]) Value() T { return e.item }

// String returns the string form of the value of the element.
func (e *Element[T]) String() string { return fmt.Sprint(e.item) }

// Next returns the following element, or nil.
func (e *Element[T]) Next() *Element[T] {
	if e.list == nil || e.next == &e.list.root {
		return nil
	}
	return e.next
}

// Previous returns the preceding element, or nil.
func (e *Element[T]) Previous() *Element[T] {
	if e.list == nil || e.prev == &e.list.root {
		return nil
	}
	return e.prev
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int { return l.length }

// Push adds an item to the back of the list.
func (l *List[T]) Push(it T) { l.PushBack(it) }

// PushBack adds an item to the back of the list.
func (l *List[T]) PushBack(it T) { l.lazyInit(); l.insertAfter(l.root.prev, it) }

// PushFront adds an item to the front of the list.
func (l *List[T]) PushFront(it T) { l.lazyInit(); l.insertAfter(&l.root, it) }

func (l *List[T]) insertAfter(at *Element[T], it T) {
	e := &Element[T]{item: it, list: l, prev: at, next: at.next}
	at.next.prev = e
	at.next = e
	l.length++
}

// Front returns the first element, or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.length == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element, or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.length == 0 {
		return nil
	}
	return l.root.prev
}

// PopFront removes and returns the first element, or nil.
func (l *List[T]) PopFront() *Element[T] {
	e := l.Front()
	if e == nil {
		return nil
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next, e.prev, e.list = nil, nil, nil
	l.length--
	return e
}

// Iterator returns a standard Go iterator over the values in the
// list, front to back.
func (l *List[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Front(); e != nil; e = e.Next() {
			if !yield(e.item) {
				return
			}
		}
	}
}

// Slice exports the contents of the list to a slice.
func (l *List[T]) Slice() Slice[T] {
	out := SliceWithCapacity[T](l.length)
	for v := range l.Iterator() {
		out.Push(v)
	}
	return out
}
