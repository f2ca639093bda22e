package lazy

import (
	"github.com/tychoish/lazy/ers"
)

// Cursor is a pull iterator over a view. Call Next to advance, and
// Value to read the current value:
//
//	iter := view.Iterator()
//	for iter.Next() {
//		fmt.Println(iter.Value())
//	}
//
// Cursors are not safe for concurrent use.
type Cursor[T any, P Forward[P, T]] struct {
	pos     P
	end     P
	value   T
	started bool
	done    bool
}

// Next advances the cursor, and returns false once the end of the
// view is reached.
func (c *Cursor[T, P]) Next() bool {
	if c.done {
		return false
	}

	if c.started {
		c.pos = c.pos.Next()
	}
	c.started = true

	if c.pos.Equal(c.end) {
		var zero T
		c.value = zero
		c.done = true
		return false
	}

	c.value = c.pos.Current()
	return true
}

// Value returns the current value. It panics with ers.ErrExhausted
// when called before Next, or after Next has returned false.
func (c *Cursor[T, P]) Value() T {
	if !c.started || c.done {
		panic(ers.ErrExhausted)
	}
	return c.value
}

// Read advances the cursor and returns the value, or
// ers.ErrExhausted at the end of the view.
func (c *Cursor[T, P]) Read() (T, error) {
	if !c.Next() {
		var zero T
		return zero, ers.ErrExhausted
	}
	return c.value, nil
}

// Position returns the cursor's current position.
func (c *Cursor[T, P]) Position() P { return c.pos }
