package lazy

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strings"

	"github.com/tychoish/lazy/ers"
)

// View is a lazy sequence: two positions, begin and end, in a
// traversal protocol. Views own their positions by value and are
// cheap to copy; copies traverse independently.
//
// The zero value is an empty view for the Repeat and Range
// positions.
type View[T any, P Forward[P, T]] struct {
	begin P
	end   P
}

// NewView constructs a view from two positions. When the positions
// implement Compatible, NewView returns an error for positions that
// cannot be compared with each other.
func NewView[T any, P Forward[P, T]](begin, end P) (View[T, P], error) {
	if c, ok := any(begin).(Compatible[P]); ok {
		if err := c.Compatible(end); err != nil {
			return View[T, P]{}, ers.Wrap(err, "new view")
		}
	}
	return View[T, P]{begin: begin, end: end}, nil
}

// Must is a helper for constructors that return an error, and panics
// if the error is non-nil.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// Begin returns the first position of the view.
func (v View[T, P]) Begin() P { return v.begin }

// End returns the position that marks the end of the view.
func (v View[T, P]) End() P { return v.end }

// Release returns both positions and resets the view to its zero
// value. Use it when the view is discarded, to hand its positions to
// another owner.
func (v *View[T, P]) Release() (begin, end P) {
	begin, end = v.begin, v.end
	*v = View[T, P]{}
	return begin, end
}

// IsRandomAccess reports whether the view's positions support O(1)
// offset and distance, and therefore parallel materialization.
func (v View[T, P]) IsRandomAccess() bool {
	_, ok := any(v.begin).(RandomAccess[P, T])
	return ok
}

// Len returns the number of values in the view. It is O(1) for
// random access positions, and traverses the view otherwise.
func (v View[T, P]) Len() int {
	if n, ok := v.distance(); ok {
		return n
	}
	return v.count()
}

// IsEmpty reports whether the view has no values, without measuring
// it.
func (v View[T, P]) IsEmpty() bool { return v.begin.Equal(v.end) }

// IsUnbounded reports whether the view never ends, as with
// Repeat(value). Only random access views can be recognized as
// unbounded.
func (v View[T, P]) IsUnbounded() bool {
	n, ok := v.distance()
	return ok && n == math.MaxInt
}

func (v View[T, P]) distance() (int, bool) {
	ra, ok := any(v.begin).(RandomAccess[P, T])
	if !ok {
		return 0, false
	}
	n, err := ra.Distance(v.end)
	if err != nil {
		return 0, false
	}
	return max(0, n), true
}

func (v View[T, P]) count() (n int) {
	for pos := v.begin; !pos.Equal(v.end); pos = pos.Next() {
		n++
	}
	return n
}

// size returns the length of the view if it can be known without
// traversal. The error is non-nil for unbounded views.
func (v View[T, P]) size() (n int, known bool, err error) {
	n, known = v.distance()
	if known && n == math.MaxInt {
		return 0, true, ers.ErrUnbounded
	}
	return n, known, nil
}

// Iterator returns a cursor positioned before the first value.
func (v View[T, P]) Iterator() *Cursor[T, P] {
	return &Cursor[T, P]{pos: v.begin, end: v.end}
}

// Seq returns the view as a standard Go iterator, for use with range
// loops.
func (v View[T, P]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := v.begin; !pos.Equal(v.end); pos = pos.Next() {
			if !yield(pos.Current()) {
				return
			}
		}
	}
}

// Observe calls the function with every value in the view.
func (v View[T, P]) Observe(fn func(T)) {
	for pos := v.begin; !pos.Equal(v.end); pos = pos.Next() {
		fn(pos.Current())
	}
}

// String renders the view with its values separated by spaces.
func (v View[T, P]) String() string {
	out, err := v.ToString(" ")
	if err != nil {
		return fmt.Sprintf("%%!v(ERROR=%v)", err)
	}
	return out
}

// WriteTo streams the values of the view, separated by spaces, to the
// writer. It produces the same text as String, without building it
// in memory first.
func (v View[T, P]) WriteTo(w io.Writer) (int64, error) {
	if _, _, err := v.size(); err != nil {
		return 0, err
	}

	var total int64
	first := true
	for pos := v.begin; !pos.Equal(v.end); pos = pos.Next() {
		if !first {
			n, err := io.WriteString(w, " ")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		first = false

		n, err := fmt.Fprint(w, pos.Current())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func render[T any, P Forward[P, T]](buf *strings.Builder, pos, end P, delim string) {
	first := true
	for ; !pos.Equal(end); pos = pos.Next() {
		if !first {
			buf.WriteString(delim)
		}
		first = false
		fmt.Fprint(buf, pos.Current())
	}
}
