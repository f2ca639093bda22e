// Package dt provides the container shapes that lazy views can be
// materialized into, along with the small capability interfaces that
// materialization probes for.
//
// Every container implements Inserter. Reserver and Resizer are
// optional: when a container provides them, materialization reserves
// capacity up front, and parallel materialization can write into
// pre-sized storage.
package dt

import "github.com/tychoish/lazy/ers"

// ErrUninitializedContainer is the content of the panic produced when you
// attempt to perform an operation on an uninitialized container.
const ErrUninitializedContainer ers.Error = ers.Error("uninitialized container")

// Inserter is the insertion end-point of a container: Push adds one
// item at the end.
type Inserter[T any] interface {
	Push(T)
}

// Reserver is implemented by containers that can allocate capacity
// for a number of items before they are inserted.
type Reserver interface {
	Reserve(n int)
}

// Resizer is implemented by containers that can be pre-sized and
// then written by index. Writes to distinct indexes may happen
// concurrently.
type Resizer[T any] interface {
	Resize(n int)
	Set(idx int, value T)
}
