package internal

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of values that can form an arithmetic
// progression.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsFractional reports whether T can hold values between 1 and 0,
// which is true for all of the floating point kinds.
func IsFractional[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// IsNaN is only ever true for floating point values.
func IsNaN[T Number](v T) bool { return v != v }

// CeilDiv divides and rounds the quotient towards positive
// infinity. The divisor must not be zero.
func CeilDiv[T Number](a, b T) T {
	if IsFractional[T]() {
		return T(math.Ceil(float64(a) / float64(b)))
	}

	q := a / b
	if q*b != a && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// FloorDiv divides and rounds the quotient towards negative
// infinity. The divisor must not be zero.
func FloorDiv[T Number](a, b T) T {
	if IsFractional[T]() {
		return T(math.Floor(float64(a) / float64(b)))
	}

	q := a / b
	if q*b != a && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Span returns the distance between two integers as an unsigned
// magnitude, which is exact for every integer type, and reports
// whether b is at or after a. Conversion to uint64 keeps the two's
// complement bits of signed values, so the subtraction wraps to the
// true difference. Not meaningful for floating point types.
func Span[T Number](a, b T) (uint64, bool) {
	if b >= a {
		return uint64(b) - uint64(a), true
	}
	return uint64(a) - uint64(b), false
}

// Magnitude returns the absolute value of an integer as a uint64,
// including the minimum value of signed types.
func Magnitude[T Number](v T) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

// Chunk is a half-open range of indexes.
type Chunk struct {
	Low  int
	High int
}

// Len returns the number of indexes in the chunk.
func (c Chunk) Len() int { return c.High - c.Low }

// Chunks splits [0, n) into at most parts contiguous chunks whose
// lengths differ by no more than one. There are no empty chunks.
func Chunks(n, parts int) []Chunk {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))

	out := make([]Chunk, 0, parts)
	size, rem := n/parts, n%parts

	low := 0
	for i := 0; i < parts; i++ {
		high := low + size
		if i < rem {
			high++
		}
		out = append(out, Chunk{Low: low, High: high})
		low = high
	}
	return out
}
