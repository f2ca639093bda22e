package lazy

import (
	"math"
	"sort"

	"github.com/tychoish/lazy/ers"
	"github.com/tychoish/lazy/internal"
)

// Number is the set of types that can form a Range.
type Number = internal.Number

// RangePosition is a position in an arithmetic progression. Its
// value is computed from an origin, an index and the step, so that
// floating point steps do not accumulate error as the position
// advances.
//
// A RangePosition only moves forward: Offset rejects negative
// values. Offset and Distance are both O(1).
type RangePosition[T Number] struct {
	origin T
	index  int
	step   T
}

// Range produces the view [start, end) in increments of step. The
// step may be negative, in which case the sequence counts down, and
// fractional. A zero step is an error, as are NaN arguments.
//
// The view ends at the first value that reaches or passes end,
// which need not be equal to end.
func Range[T Number](start, end, step T) (View[T, RangePosition[T]], error) {
	switch {
	case internal.IsNaN(start) || internal.IsNaN(end) || internal.IsNaN(step):
		return View[T, RangePosition[T]]{}, ers.Wrap(ers.ErrInvalidArgument, "range arguments must not be NaN")
	case step == 0:
		return View[T, RangePosition[T]]{}, ers.Wrapf(ers.Classify(ers.ErrZeroStep, ers.ErrInvalidArgument), "range(%v, %v)", start, end)
	}

	begin := RangePosition[T]{origin: start, step: step}
	stop := RangePosition[T]{origin: end, step: step}

	// the value that ends an integer progression must fit in T, or
	// traversal would wrap around instead of reaching the end.
	if !internal.IsFractional[T]() {
		if n, _ := begin.Distance(stop); n > 0 && n < math.MaxInt {
			last := begin.at(n - 1)
			if next := last + step; (next > last) != (step > 0) {
				return View[T, RangePosition[T]]{}, ers.Wrapf(ers.ErrInvalidArgument,
					"range(%v, %v, %v) overflows %T after %v", start, end, step, start, last)
			}
		}
	}

	return View[T, RangePosition[T]]{begin: begin, end: stop}, nil
}

// RangeTo produces [0, end) with a step of 1.
func RangeTo[T Number](end T) View[T, RangePosition[T]] {
	return Must(Range(0, end, 1))
}

// RangeFrom produces [start, end) with a step of 1.
func RangeFrom[T Number](start, end T) View[T, RangePosition[T]] {
	return Must(Range(start, end, 1))
}

// Step returns the increment between adjacent values.
func (p RangePosition[T]) Step() T { return p.step }

// Current returns the value at the position.
func (p RangePosition[T]) Current() T { return p.at(0) }

// Next returns the position one step after p.
func (p RangePosition[T]) Next() RangePosition[T] {
	p.index++
	return p
}

// Equal reports whether p has reached or passed other, in the
// direction of the step. Panics if the positions have different
// steps.
func (p RangePosition[T]) Equal(other RangePosition[T]) bool {
	if err := p.Compatible(other); err != nil {
		panic(ers.NewInvariantViolation(err))
	}

	return p.passes(0, other.Current())
}

// Compatible returns an error unless both positions have the same
// step.
func (p RangePosition[T]) Compatible(other RangePosition[T]) error {
	return ers.When(p.step != other.step,
		ers.Wrapf(ers.ErrIncompatiblePositions, "step %v is not step %v", p.step, other.step))
}

// Offset returns the position n steps after p. Negative offsets are
// an error.
func (p RangePosition[T]) Offset(n int) (RangePosition[T], error) {
	if n < 0 {
		return p, ers.Wrapf(ers.Classify(ers.ErrNegativeOffset, ers.ErrInvalidArgument), "offset %d", n)
	}
	p.index += n
	return p, nil
}

// Distance returns the number of steps needed for p to reach or pass
// other, which is the number of values Next visits before Equal
// reports true. The result is negative when other is behind p, and
// math.MaxInt when the distance cannot be represented, as for a step
// that is too small to make progress.
func (p RangePosition[T]) Distance(other RangePosition[T]) (int, error) {
	if err := p.Compatible(other); err != nil {
		return 0, err
	}

	// only the zero value has a zero step.
	if p.step == 0 {
		return 0, nil
	}

	target := other.Current()
	if internal.IsFractional[T]() {
		return p.fractionalDistance(target), nil
	}

	diff, forward := internal.Span(p.Current(), target)
	step := internal.Magnitude(p.step)
	if forward == (p.step > 0) {
		return clampSteps(internal.CeilDiv(diff, step)), nil
	}
	return -clampSteps(internal.FloorDiv(diff, step)), nil
}

// fractionalDistance estimates the distance in float64 and then
// searches around the estimate with the position's own arithmetic, so
// that the result agrees with Equal despite rounding in T. The search
// is logarithmic: passes is monotonic in the number of steps.
func (p RangePosition[T]) fractionalDistance(target T) int {
	est := math.Ceil((float64(target) - float64(p.Current())) / float64(p.step))
	switch {
	case math.IsNaN(est) || est >= math.MaxInt:
		return math.MaxInt
	case est <= math.MinInt:
		return math.MinInt
	case est <= 0 && p.passes(0, target):
		return int(est)
	}

	k := max(int(est), 1)
	if p.passes(k, target) {
		return sort.Search(k, func(n int) bool { return p.passes(n, target) })
	}

	low := k + 1
	for width := k; ; width *= 2 {
		if width > math.MaxInt-low || width > math.MaxInt/2 {
			return math.MaxInt
		}
		high := low + width
		if p.passes(high, target) {
			return low + sort.Search(high-low, func(n int) bool { return p.passes(low+n, target) })
		}
		low = high + 1
	}
}

// passes reports whether the value n steps after p has reached or
// passed the target, using the comparison Equal uses.
func (p RangePosition[T]) passes(n int, target T) bool {
	value := p.at(n)
	if p.step < 0 {
		return value <= target
	}
	return value >= target
}

// at returns the value n steps after p. Integer arithmetic wraps, but
// the result is exact whenever the true value fits in T.
func (p RangePosition[T]) at(n int) T { return p.origin + T(p.index+n)*p.step }

func clampSteps(n uint64) int {
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
