package dt

import (
	"slices"
	"testing"

	"github.com/tychoish/lazy/assert"
	"github.com/tychoish/lazy/assert/check"
	"github.com/tychoish/lazy/ers"
)

func TestRing(t *testing.T) {
	t.Run("Smoke", func(t *testing.T) {
		ring := &Ring[int]{}

		t.Run("InsertOne", func(t *testing.T) {
			assert.Equal(t, ring.Len(), 0)
			ring.Push(42)
			assert.Equal(t, ring.Len(), 1)
			assert.Equal(t, ring.Cap(), defaultRingSize)
		})
		t.Run("InsertSecond", func(t *testing.T) {
			ring.Push(84)
			assert.Equal(t, ring.Len(), 2)
		})
		t.Run("FIFO", func(t *testing.T) {
			assert.EqualItems(t, slices.Collect(ring.FIFO()), []int{42, 84})
		})
		t.Run("LIFO", func(t *testing.T) {
			assert.EqualItems(t, slices.Collect(ring.LIFO()), []int{84, 42})
		})
	})
	t.Run("Overwrite", func(t *testing.T) {
		ring := MakeRing[int](3)
		for i := range 10 {
			ring.Push(i)
		}
		check.Equal(t, ring.Len(), 3)
		check.Equal(t, ring.Cap(), 3)
		check.Equal(t, ring.Total(), uint64(10))
		assert.EqualItems(t, slices.Collect(ring.FIFO()), []int{7, 8, 9})
		assert.EqualItems(t, slices.Collect(ring.LIFO()), []int{9, 8, 7})
	})
	t.Run("Pop", func(t *testing.T) {
		ring := MakeRing[string](2)
		_, ok := ring.Pop()
		check.True(t, !ok)

		ring.Push("a")
		ring.Push("b")
		ring.Push("c")

		val, ok := ring.Pop()
		assert.True(t, ok)
		check.Equal(t, val, "b")
		assert.EqualItems(t, slices.Collect(ring.FIFO()), []string{"c"})

		ring.Push("d")
		assert.EqualItems(t, slices.Collect(ring.FIFO()), []string{"c", "d"})
	})
	t.Run("InvalidSize", func(t *testing.T) {
		assert.PanicErrorIs(t, func() { MakeRing[int](0) }, ers.ErrInvalidArgument)
	})
}
