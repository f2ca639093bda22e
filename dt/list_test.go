package dt

import (
	"slices"
	"testing"

	"github.com/tychoish/lazy/assert"
	"github.com/tychoish/lazy/assert/check"
)

func TestList(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		l := MakeList[int]()
		check.Equal(t, l.Len(), 0)
		check.True(t, l.Front() == nil)
		check.True(t, l.Back() == nil)
		check.True(t, l.PopFront() == nil)
		check.Equal(t, len(l.Slice()), 0)
	})
	t.Run("ZeroValue", func(t *testing.T) {
		var l List[string]
		l.Push("a")
		assert.Equal(t, l.Len(), 1)
		assert.Equal(t, l.Front().Value(), "a")
	})
	t.Run("Order", func(t *testing.T) {
		l := MakeList[int]()
		l.PushBack(2)
		l.PushBack(3)
		l.PushFront(1)
		l.Push(4)
		assert.Equal(t, l.Len(), 4)
		assert.EqualItems(t, l.Slice(), []int{1, 2, 3, 4})
		assert.EqualItems(t, slices.Collect(l.Iterator()), []int{1, 2, 3, 4})
		check.Equal(t, l.Front().Value(), 1)
		check.Equal(t, l.Back().Value(), 4)
		check.Equal(t, l.Back().String(), "4")
	})
	t.Run("Walk", func(t *testing.T) {
		l := MakeList[int]()
		for i := 0; i < 10; i++ {
			l.Push(i)
		}
		count := 0
		for e := l.Back(); e != nil; e = e.Previous() {
			check.Equal(t, e.Value(), 9-count)
			count++
		}
		check.Equal(t, count, 10)
	})
	t.Run("PopFront", func(t *testing.T) {
		l := MakeList[int]()
		l.Push(1)
		l.Push(2)
		e := l.PopFront()
		assert.Equal(t, e.Value(), 1)
		check.True(t, e.Next() == nil)
		check.Equal(t, l.Len(), 1)
		check.Equal(t, l.Front().Value(), 2)
	})
	t.Run("Capabilities", func(t *testing.T) {
		var l any = MakeList[int]()
		_, ok := l.(Inserter[int])
		check.True(t, ok)
		_, ok = l.(Reserver)
		check.True(t, !ok)
		_, ok = l.(Resizer[int])
		check.True(t, !ok)
	})
}
