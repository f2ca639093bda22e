package dt

import (
	"testing"

	"github.com/tychoish/lazy/assert"
	"github.com/tychoish/lazy/assert/check"
)

func TestMap(t *testing.T) {
	mp := NewMap(map[string]int{})
	mp.Store("a", 1)
	mp.Store("b", 2)
	mp.Store("a", 3)

	assert.Equal(t, mp.Len(), 2)
	check.Equal(t, mp.Get("a"), 3)
	check.True(t, mp.Check("b"))
	check.True(t, !mp.Check("c"))

	v, ok := mp.Load("c")
	check.True(t, !ok)
	check.Zero(t, v)

	mp.Delete("a")
	check.True(t, !mp.Check("a"))

	count := 0
	for k, v := range mp.Iterator() {
		check.Equal(t, k, "b")
		check.Equal(t, v, 2)
		count++
	}
	check.Equal(t, count, 1)
}
