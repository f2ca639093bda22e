package dt

import (
	"strings"
	"testing"

	"github.com/tychoish/lazy/assert"
	"github.com/tychoish/lazy/assert/check"
)

func TestOrderedMap(t *testing.T) {
	t.Run("Sorted", func(t *testing.T) {
		mp := NewOrderedMap[int, string]()
		for _, k := range []int{5, 3, 9, 1, 7} {
			mp.Store(k, strings.Repeat("x", k))
		}
		assert.Equal(t, mp.Len(), 5)
		assert.EqualItems(t, mp.Keys(), []int{1, 3, 5, 7, 9})
		assert.EqualItems(t, mp.Values(), []string{"x", "xxx", "xxxxx", "xxxxxxx", "xxxxxxxxx"})

		prev := 0
		for k, v := range mp.Iterator() {
			check.True(t, k > prev)
			check.Equal(t, len(v), k)
			prev = k
		}
	})
	t.Run("LastWriteWins", func(t *testing.T) {
		mp := NewOrderedMap[string, int]()
		mp.Store("a", 1)
		mp.Store("a", 2)
		assert.Equal(t, mp.Len(), 1)
		v, ok := mp.Load("a")
		check.True(t, ok)
		check.Equal(t, v, 2)
	})
	t.Run("Delete", func(t *testing.T) {
		mp := NewOrderedMap[int, int]()
		mp.Reserve(3)
		mp.Store(1, 1)
		mp.Store(2, 2)
		mp.Store(3, 3)
		mp.Delete(2)
		mp.Delete(42)
		check.EqualItems(t, mp.Keys(), []int{1, 3})
		check.True(t, !mp.Check(2))
		_, ok := mp.Load(2)
		check.True(t, !ok)
	})
	t.Run("CustomOrder", func(t *testing.T) {
		mp := NewOrderedMapFunc[int, bool](func(a, b int) int { return b - a })
		for i := 0; i < 5; i++ {
			mp.Store(i, i%2 == 0)
		}
		check.EqualItems(t, mp.Keys(), []int{4, 3, 2, 1, 0})
	})
	t.Run("Uninitialized", func(t *testing.T) {
		var mp OrderedMap[int, int]
		assert.PanicErrorIs(t, func() { mp.Store(1, 1) }, ErrUninitializedContainer)
		assert.PanicErrorIs(t, func() { NewOrderedMapFunc[int, int](nil) }, ErrUninitializedContainer)
	})
}
