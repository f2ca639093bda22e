// Package lazy provides composable, lazily evaluated sequence views.
//
// A View is a pair of positions, begin and end, in a traversal
// protocol. Positions are small values: the protocol is Current() to
// read the value, Next() to produce the following position, and
// Equal() to test whether traversal has reached another position.
// Positions that can jump implement RandomAccess, which adds O(1)
// Offset and Distance, and makes the view eligible for parallel
// materialization.
//
// Views do no work until they are traversed or materialized: the
// Repeat and Range generators synthesize their values on demand, and
// the materialization functions (ToSlice, To, ToArray, ToMap,
// ToOrderedMap, ToString) drive the same pull loop to fill a
// concrete structure.
package lazy

// Forward is the minimal traversal protocol. Implementations are
// value types: Next returns the following position and leaves the
// receiver unchanged.
//
// Current must not be called on a position that is Equal to the end
// of its view; the Cursor and the materialization functions never do.
type Forward[P any, T any] interface {
	Current() T
	Next() P
	Equal(P) bool
}

// RandomAccess positions can move by more than one step, and measure
// the number of steps between two positions, in constant time.
type RandomAccess[P any, T any] interface {
	Forward[P, T]
	Offset(n int) (P, error)
	Distance(to P) (int, error)
}

// Compatible is implemented by positions that carry configuration,
// and can only be compared with positions that share it. NewView
// checks compatibility before constructing a view.
type Compatible[P any] interface {
	Compatible(P) error
}

// Distance returns the number of steps from a to b.
func Distance[P interface{ Distance(P) (int, error) }](a, b P) (int, error) {
	return a.Distance(b)
}

// Advance returns the position n steps after p.
func Advance[P interface{ Offset(int) (P, error) }](p P, n int) (P, error) {
	return p.Offset(n)
}
