package ers

import (
	"errors"
	"testing"

	"github.com/tychoish/lazy/assert"
	"github.com/tychoish/lazy/assert/check"
)

func TestConstant(t *testing.T) {
	check.NotError(t, Wrap(nil, "hello"))
	check.NotError(t, Wrapf(nil, "hello %s %s", "args", "argsd"))
	const expected Error = "hello"
	err := Wrap(expected, "hello")
	assert.Equal(t, err.Error(), "hello: hello")
	assert.ErrorIs(t, err, expected)

	err = Wrapf(expected, "hello %s", "world")
	assert.Equal(t, err.Error(), "hello world: hello")
	assert.ErrorIs(t, err, expected)

	t.Run("Is", func(t *testing.T) {
		check.True(t, Error("").Is(nil))
		check.True(t, !Error("a").Is(nil))
		check.True(t, !Error("a").Is(errors.New("a")))
		check.True(t, Error("a").Is(Error("a")))
	})
}
