package dt

import (
	"slices"
	"testing"

	"github.com/tychoish/lazy/assert"
	"github.com/tychoish/lazy/assert/check"
)

func TestSet(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		var s Set[int]
		check.Equal(t, s.Len(), 0)
		check.True(t, !s.Check(1))
		s.Delete(1)
		s.Push(1)
		check.True(t, s.Check(1))
	})
	t.Run("Unique", func(t *testing.T) {
		s := MakeSet[string]()
		s.Push("a")
		s.Push("b")
		s.Push("a")
		assert.Equal(t, s.Len(), 2)
		items := slices.Sorted(s.Iterator())
		assert.EqualItems(t, items, []string{"a", "b"})

		s.Delete("a")
		check.Equal(t, s.Len(), 1)
		check.True(t, !s.Check("a"))
	})
	t.Run("Reserve", func(t *testing.T) {
		s := MakeSet[int]()
		s.Reserve(100)
		check.Equal(t, s.Len(), 0)
		s.Push(4)
		s.Reserve(100)
		check.True(t, s.Check(4))
	})
}
