package lazy

import (
	"math"

	"github.com/tychoish/lazy/ers"
)

// repeatState is shared, read-only, by every position of a single
// Repeat view.
type repeatState[T any] struct {
	value T
	count int
}

// RepeatPosition is a random access position in a sequence that
// yields the same value a fixed number of times.
type RepeatPosition[T any] struct {
	state *repeatState[T]
	index int
}

// Repeat produces a view that yields the value forever. The length
// of the view is math.MaxInt, and materializing it fails with
// ers.ErrUnbounded.
//
// The view holds its own copy of the value.
func Repeat[T any](value T) View[T, RepeatPosition[T]] {
	return newRepeat(value, math.MaxInt)
}

// RepeatN produces a view that yields the value n times. A count of
// zero produces an empty view; negative counts are an error.
func RepeatN[T any](value T, n int) (View[T, RepeatPosition[T]], error) {
	if n < 0 {
		return View[T, RepeatPosition[T]]{}, ers.Wrapf(ers.ErrInvalidArgument, "cannot repeat a value %d times", n)
	}
	return newRepeat(value, n), nil
}

func newRepeat[T any](value T, n int) View[T, RepeatPosition[T]] {
	state := &repeatState[T]{value: value, count: n}
	return View[T, RepeatPosition[T]]{
		begin: RepeatPosition[T]{state: state, index: 0},
		end:   RepeatPosition[T]{state: state, index: n},
	}
}

// Index returns the zero-based position in the sequence.
func (p RepeatPosition[T]) Index() int { return p.index }

// Current returns the repeated value.
func (p RepeatPosition[T]) Current() T {
	if p.state == nil {
		panic(ers.NewInvariantViolation(ers.ErrExhausted))
	}
	return p.state.value
}

// Next returns the position after p.
func (p RepeatPosition[T]) Next() RepeatPosition[T] {
	p.index++
	return p
}

// Equal reports whether both positions have the same index. Panics
// if the positions belong to different views.
func (p RepeatPosition[T]) Equal(other RepeatPosition[T]) bool {
	if err := p.Compatible(other); err != nil {
		panic(ers.NewInvariantViolation(err))
	}
	return p.index == other.index
}

// Compatible returns an error unless both positions come from the
// same Repeat view.
func (p RepeatPosition[T]) Compatible(other RepeatPosition[T]) error {
	return ers.When(p.state != other.state, ers.Wrap(ers.ErrIncompatiblePositions, "positions of different repeat views"))
}

// Offset returns the position n steps away from p. The result must
// be within the view: n may be negative, but not past the beginning.
func (p RepeatPosition[T]) Offset(n int) (RepeatPosition[T], error) {
	count := 0
	if p.state != nil {
		count = p.state.count
	}

	if (n < 0 && -n > p.index) || (n > 0 && n > count-p.index) {
		return p, ers.Wrapf(ers.ErrOutOfBounds, "offset %d from index %d of %d", n, p.index, count)
	}

	p.index += n
	return p, nil
}

// Distance returns the number of steps from p to other.
func (p RepeatPosition[T]) Distance(other RepeatPosition[T]) (int, error) {
	if err := p.Compatible(other); err != nil {
		return 0, err
	}
	return other.index - p.index, nil
}
